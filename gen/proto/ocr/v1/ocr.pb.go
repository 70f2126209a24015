// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: ocr/v1/ocr.proto

package ocrv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type ExtractTextRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Image         []byte                 `protobuf:"bytes,1,opt,name=image,proto3" json:"image,omitempty"`
	ContentType   string                 `protobuf:"bytes,2,opt,name=content_type,json=contentType,proto3" json:"content_type,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractTextRequest) Reset() {
	*x = ExtractTextRequest{}
	mi := &file_ocr_v1_ocr_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractTextRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractTextRequest) ProtoMessage() {}

func (x *ExtractTextRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ocr_v1_ocr_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractTextRequest.ProtoReflect.Descriptor instead.
func (*ExtractTextRequest) Descriptor() ([]byte, []int) {
	return file_ocr_v1_ocr_proto_rawDescGZIP(), []int{0}
}

func (x *ExtractTextRequest) GetImage() []byte {
	if x != nil {
		return x.Image
	}
	return nil
}

func (x *ExtractTextRequest) GetContentType() string {
	if x != nil {
		return x.ContentType
	}
	return ""
}

type ExtractTextResponse struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	ExtractedText    string                 `protobuf:"bytes,1,opt,name=extracted_text,json=extractedText,proto3" json:"extracted_text,omitempty"`
	Confidence       float64                `protobuf:"fixed64,2,opt,name=confidence,proto3" json:"confidence,omitempty"`
	ProcessingTimeMs int64                  `protobuf:"varint,3,opt,name=processing_time_ms,json=processingTimeMs,proto3" json:"processing_time_ms,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *ExtractTextResponse) Reset() {
	*x = ExtractTextResponse{}
	mi := &file_ocr_v1_ocr_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractTextResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractTextResponse) ProtoMessage() {}

func (x *ExtractTextResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ocr_v1_ocr_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractTextResponse.ProtoReflect.Descriptor instead.
func (*ExtractTextResponse) Descriptor() ([]byte, []int) {
	return file_ocr_v1_ocr_proto_rawDescGZIP(), []int{1}
}

func (x *ExtractTextResponse) GetExtractedText() string {
	if x != nil {
		return x.ExtractedText
	}
	return ""
}

func (x *ExtractTextResponse) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *ExtractTextResponse) GetProcessingTimeMs() int64 {
	if x != nil {
		return x.ProcessingTimeMs
	}
	return 0
}

type ProcessReceiptRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Image         []byte                 `protobuf:"bytes,1,opt,name=image,proto3" json:"image,omitempty"`
	ContentType   string                 `protobuf:"bytes,2,opt,name=content_type,json=contentType,proto3" json:"content_type,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessReceiptRequest) Reset() {
	*x = ProcessReceiptRequest{}
	mi := &file_ocr_v1_ocr_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessReceiptRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessReceiptRequest) ProtoMessage() {}

func (x *ProcessReceiptRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ocr_v1_ocr_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessReceiptRequest.ProtoReflect.Descriptor instead.
func (*ProcessReceiptRequest) Descriptor() ([]byte, []int) {
	return file_ocr_v1_ocr_proto_rawDescGZIP(), []int{2}
}

func (x *ProcessReceiptRequest) GetImage() []byte {
	if x != nil {
		return x.Image
	}
	return nil
}

func (x *ProcessReceiptRequest) GetContentType() string {
	if x != nil {
		return x.ContentType
	}
	return ""
}

type IngredientSuggestion struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	IngredientId   string                 `protobuf:"bytes,1,opt,name=ingredient_id,json=ingredientId,proto3" json:"ingredient_id,omitempty"`
	IngredientName string                 `protobuf:"bytes,2,opt,name=ingredient_name,json=ingredientName,proto3" json:"ingredient_name,omitempty"`
	Confidence     float64                `protobuf:"fixed64,3,opt,name=confidence,proto3" json:"confidence,omitempty"`
	DetectedText   string                 `protobuf:"bytes,4,opt,name=detected_text,json=detectedText,proto3" json:"detected_text,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *IngredientSuggestion) Reset() {
	*x = IngredientSuggestion{}
	mi := &file_ocr_v1_ocr_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngredientSuggestion) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngredientSuggestion) ProtoMessage() {}

func (x *IngredientSuggestion) ProtoReflect() protoreflect.Message {
	mi := &file_ocr_v1_ocr_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngredientSuggestion.ProtoReflect.Descriptor instead.
func (*IngredientSuggestion) Descriptor() ([]byte, []int) {
	return file_ocr_v1_ocr_proto_rawDescGZIP(), []int{3}
}

func (x *IngredientSuggestion) GetIngredientId() string {
	if x != nil {
		return x.IngredientId
	}
	return ""
}

func (x *IngredientSuggestion) GetIngredientName() string {
	if x != nil {
		return x.IngredientName
	}
	return ""
}

func (x *IngredientSuggestion) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *IngredientSuggestion) GetDetectedText() string {
	if x != nil {
		return x.DetectedText
	}
	return ""
}

type ReceiptItem struct {
	state         protoimpl.MessageState  `protogen:"open.v1"`
	DetectedText  string                  `protobuf:"bytes,1,opt,name=detected_text,json=detectedText,proto3" json:"detected_text,omitempty"`
	Quantity      *float64                `protobuf:"fixed64,2,opt,name=quantity,proto3,oneof" json:"quantity,omitempty"`
	Unit          *string                 `protobuf:"bytes,3,opt,name=unit,proto3,oneof" json:"unit,omitempty"`
	Price         *float64                `protobuf:"fixed64,4,opt,name=price,proto3,oneof" json:"price,omitempty"`
	Suggestions   []*IngredientSuggestion `protobuf:"bytes,5,rep,name=suggestions,proto3" json:"suggestions,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReceiptItem) Reset() {
	*x = ReceiptItem{}
	mi := &file_ocr_v1_ocr_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReceiptItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReceiptItem) ProtoMessage() {}

func (x *ReceiptItem) ProtoReflect() protoreflect.Message {
	mi := &file_ocr_v1_ocr_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReceiptItem.ProtoReflect.Descriptor instead.
func (*ReceiptItem) Descriptor() ([]byte, []int) {
	return file_ocr_v1_ocr_proto_rawDescGZIP(), []int{4}
}

func (x *ReceiptItem) GetDetectedText() string {
	if x != nil {
		return x.DetectedText
	}
	return ""
}

func (x *ReceiptItem) GetQuantity() float64 {
	if x != nil && x.Quantity != nil {
		return *x.Quantity
	}
	return 0
}

func (x *ReceiptItem) GetUnit() string {
	if x != nil && x.Unit != nil {
		return *x.Unit
	}
	return ""
}

func (x *ReceiptItem) GetPrice() float64 {
	if x != nil && x.Price != nil {
		return *x.Price
	}
	return 0
}

func (x *ReceiptItem) GetSuggestions() []*IngredientSuggestion {
	if x != nil {
		return x.Suggestions
	}
	return nil
}

type ProcessReceiptResponse struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	RawText            string                 `protobuf:"bytes,1,opt,name=raw_text,json=rawText,proto3" json:"raw_text,omitempty"`
	DetectedItems      []*ReceiptItem         `protobuf:"bytes,2,rep,name=detected_items,json=detectedItems,proto3" json:"detected_items,omitempty"`
	ProcessingTimeMs   int64                  `protobuf:"varint,3,opt,name=processing_time_ms,json=processingTimeMs,proto3" json:"processing_time_ms,omitempty"`
	TotalItemsDetected int32                  `protobuf:"varint,4,opt,name=total_items_detected,json=totalItemsDetected,proto3" json:"total_items_detected,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *ProcessReceiptResponse) Reset() {
	*x = ProcessReceiptResponse{}
	mi := &file_ocr_v1_ocr_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessReceiptResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessReceiptResponse) ProtoMessage() {}

func (x *ProcessReceiptResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ocr_v1_ocr_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessReceiptResponse.ProtoReflect.Descriptor instead.
func (*ProcessReceiptResponse) Descriptor() ([]byte, []int) {
	return file_ocr_v1_ocr_proto_rawDescGZIP(), []int{5}
}

func (x *ProcessReceiptResponse) GetRawText() string {
	if x != nil {
		return x.RawText
	}
	return ""
}

func (x *ProcessReceiptResponse) GetDetectedItems() []*ReceiptItem {
	if x != nil {
		return x.DetectedItems
	}
	return nil
}

func (x *ProcessReceiptResponse) GetProcessingTimeMs() int64 {
	if x != nil {
		return x.ProcessingTimeMs
	}
	return 0
}

func (x *ProcessReceiptResponse) GetTotalItemsDetected() int32 {
	if x != nil {
		return x.TotalItemsDetected
	}
	return 0
}

var File_ocr_v1_ocr_proto protoreflect.FileDescriptor

const file_ocr_v1_ocr_proto_rawDesc = "" +
	"\n" +
	"\x10ocr/v1/ocr.proto\x12\x06ocr.v1\"M\n" +
	"\x12ExtractTextRequest\x12\x14\n" +
	"\x05image\x18\x01 \x01(\fR\x05image\x12!\n" +
	"\fcontent_type\x18\x02 \x01(\tR\vcontentType\"\x8a\x01\n" +
	"\x13ExtractTextResponse\x12%\n" +
	"\x0eextracted_text\x18\x01 \x01(\tR\rextractedText\x12\x1e\n" +
	"\n" +
	"confidence\x18\x02 \x01(\x01R\n" +
	"confidence\x12,\n" +
	"\x12processing_time_ms\x18\x03 \x01(\x03R\x10processingTimeMs\"P\n" +
	"\x15ProcessReceiptRequest\x12\x14\n" +
	"\x05image\x18\x01 \x01(\fR\x05image\x12!\n" +
	"\fcontent_type\x18\x02 \x01(\tR\vcontentType\"\xa9\x01\n" +
	"\x14IngredientSuggestion\x12#\n" +
	"\ringredient_id\x18\x01 \x01(\tR\fingredientId\x12'\n" +
	"\x0fingredient_name\x18\x02 \x01(\tR\x0eingredientName\x12\x1e\n" +
	"\n" +
	"confidence\x18\x03 \x01(\x01R\n" +
	"confidence\x12#\n" +
	"\rdetected_text\x18\x04 \x01(\tR\fdetectedText\"\xe7\x01\n" +
	"\vReceiptItem\x12#\n" +
	"\rdetected_text\x18\x01 \x01(\tR\fdetectedText\x12\x1f\n" +
	"\bquantity\x18\x02 \x01(\x01H\x00R\bquantity\x88\x01\x01\x12\x17\n" +
	"\x04unit\x18\x03 \x01(\tH\x01R\x04unit\x88\x01\x01\x12\x19\n" +
	"\x05price\x18\x04 \x01(\x01H\x02R\x05price\x88\x01\x01\x12>\n" +
	"\vsuggestions\x18\x05 \x03(\v2\x1c.ocr.v1.IngredientSuggestionR\vsuggestionsB\v\n" +
	"\t_quantityB\a\n" +
	"\x05_unitB\b\n" +
	"\x06_price\"\xcf\x01\n" +
	"\x16ProcessReceiptResponse\x12\x19\n" +
	"\braw_text\x18\x01 \x01(\tR\arawText\x12:\n" +
	"\x0edetected_items\x18\x02 \x03(\v2\x13.ocr.v1.ReceiptItemR\rdetectedItems\x12,\n" +
	"\x12processing_time_ms\x18\x03 \x01(\x03R\x10processingTimeMs\x120\n" +
	"\x14total_items_detected\x18\x04 \x01(\x05R\x12totalItemsDetected2\xa5\x01\n" +
	"\n" +
	"OCRService\x12F\n" +
	"\vExtractText\x12\x1a.ocr.v1.ExtractTextRequest\x1a\x1b.ocr.v1.ExtractTextResponse\x12O\n" +
	"\x0eProcessReceipt\x12\x1d.ocr.v1.ProcessReceiptRequest\x1a\x1e.ocr.v1.ProcessReceiptResponseB?Z=github.com/cookify/receipt-ocr-service/gen/proto/ocr/v1;ocrv1b\x06proto3"

var (
	file_ocr_v1_ocr_proto_rawDescOnce sync.Once
	file_ocr_v1_ocr_proto_rawDescData []byte
)

func file_ocr_v1_ocr_proto_rawDescGZIP() []byte {
	file_ocr_v1_ocr_proto_rawDescOnce.Do(func() {
		file_ocr_v1_ocr_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_ocr_v1_ocr_proto_rawDesc), len(file_ocr_v1_ocr_proto_rawDesc)))
	})
	return file_ocr_v1_ocr_proto_rawDescData
}

var file_ocr_v1_ocr_proto_msgTypes = make([]protoimpl.MessageInfo, 6)
var file_ocr_v1_ocr_proto_goTypes = []any{
	(*ExtractTextRequest)(nil),     // 0: ocr.v1.ExtractTextRequest
	(*ExtractTextResponse)(nil),    // 1: ocr.v1.ExtractTextResponse
	(*ProcessReceiptRequest)(nil),  // 2: ocr.v1.ProcessReceiptRequest
	(*IngredientSuggestion)(nil),   // 3: ocr.v1.IngredientSuggestion
	(*ReceiptItem)(nil),            // 4: ocr.v1.ReceiptItem
	(*ProcessReceiptResponse)(nil), // 5: ocr.v1.ProcessReceiptResponse
}
var file_ocr_v1_ocr_proto_depIdxs = []int32{
	3, // 0: ocr.v1.ReceiptItem.suggestions:type_name -> ocr.v1.IngredientSuggestion
	4, // 1: ocr.v1.ProcessReceiptResponse.detected_items:type_name -> ocr.v1.ReceiptItem
	0, // 2: ocr.v1.OCRService.ExtractText:input_type -> ocr.v1.ExtractTextRequest
	2, // 3: ocr.v1.OCRService.ProcessReceipt:input_type -> ocr.v1.ProcessReceiptRequest
	1, // 4: ocr.v1.OCRService.ExtractText:output_type -> ocr.v1.ExtractTextResponse
	5, // 5: ocr.v1.OCRService.ProcessReceipt:output_type -> ocr.v1.ProcessReceiptResponse
	4, // [4:6] is the sub-list for method output_type
	2, // [2:4] is the sub-list for method input_type
	2, // [2:2] is the sub-list for extension type_name
	2, // [2:2] is the sub-list for extension extendee
	0, // [0:2] is the sub-list for field type_name
}

func init() { file_ocr_v1_ocr_proto_init() }
func file_ocr_v1_ocr_proto_init() {
	if File_ocr_v1_ocr_proto != nil {
		return
	}
	file_ocr_v1_ocr_proto_msgTypes[4].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_ocr_v1_ocr_proto_rawDesc), len(file_ocr_v1_ocr_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   6,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_ocr_v1_ocr_proto_goTypes,
		DependencyIndexes: file_ocr_v1_ocr_proto_depIdxs,
		MessageInfos:      file_ocr_v1_ocr_proto_msgTypes,
	}.Build()
	File_ocr_v1_ocr_proto = out.File
	file_ocr_v1_ocr_proto_goTypes = nil
	file_ocr_v1_ocr_proto_depIdxs = nil
}
