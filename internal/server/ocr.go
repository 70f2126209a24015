package server

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"

	ocrv1 "github.com/cookify/receipt-ocr-service/gen/proto/ocr/v1"
	"github.com/cookify/receipt-ocr-service/internal/common"
	"github.com/cookify/receipt-ocr-service/internal/guard"
	"github.com/cookify/receipt-ocr-service/internal/pipeline"
)

type OCRService struct {
	ocrv1.UnimplementedOCRServiceServer
	processor *pipeline.Processor
	limiter   *guard.Limiter
	uploads   *guard.UploadGuard
	logger    *slog.Logger
}

func NewOCRService(proc *pipeline.Processor, limiter *guard.Limiter, uploads *guard.UploadGuard, logger *slog.Logger) *OCRService {
	return &OCRService{
		processor: proc,
		limiter:   limiter,
		uploads:   uploads,
		logger:    logger,
	}
}

// ExtractText implements ocrv1.OCRServiceServer.
func (s *OCRService) ExtractText(ctx context.Context, req *ocrv1.ExtractTextRequest) (*ocrv1.ExtractTextResponse, error) {
	ctx, err := s.admit(ctx, req.GetImage(), req.GetContentType())
	if err != nil {
		return nil, err
	}

	res, err := s.processor.ExtractText(ctx, req.GetImage())
	if err != nil {
		return nil, s.mapError(ctx, "extract text", err)
	}

	return &ocrv1.ExtractTextResponse{
		ExtractedText:    res.Text,
		Confidence:       res.Confidence,
		ProcessingTimeMs: res.ProcessingTimeMs,
	}, nil
}

// ProcessReceipt implements ocrv1.OCRServiceServer.
func (s *OCRService) ProcessReceipt(ctx context.Context, req *ocrv1.ProcessReceiptRequest) (*ocrv1.ProcessReceiptResponse, error) {
	ctx, err := s.admit(ctx, req.GetImage(), req.GetContentType())
	if err != nil {
		return nil, err
	}

	res, err := s.processor.ProcessReceipt(ctx, req.GetImage())
	if err != nil {
		return nil, s.mapError(ctx, "process receipt", err)
	}

	items := make([]*ocrv1.ReceiptItem, 0, len(res.Items))
	for _, it := range res.Items {
		pb := &ocrv1.ReceiptItem{
			DetectedText: it.DetectedText,
			Quantity:     it.Quantity,
			Unit:         it.Unit,
			Price:        it.Price,
		}
		for _, sug := range it.Suggestions {
			pb.Suggestions = append(pb.Suggestions, &ocrv1.IngredientSuggestion{
				IngredientId:   sug.IngredientID.String(),
				IngredientName: sug.IngredientName,
				Confidence:     sug.Confidence,
				DetectedText:   sug.DetectedText,
			})
		}
		items = append(items, pb)
	}

	return &ocrv1.ProcessReceiptResponse{
		RawText:            res.RawText,
		DetectedItems:      items,
		ProcessingTimeMs:   res.ProcessingTimeMs,
		TotalItemsDetected: int32(res.TotalItemsDetected),
	}, nil
}

// admit runs the request guards shared by both RPCs: rate limiting keyed by
// the calling peer, then upload screening on the raw bytes. It returns a
// context annotated with the request ID and client key for downstream logs.
func (s *OCRService) admit(ctx context.Context, image []byte, declaredMIME string) (context.Context, error) {
	requestID := uuid.NewString()
	clientKey := peerKey(ctx)
	ctx = common.WithRequestID(ctx, requestID)
	ctx = common.WithClientKey(ctx, clientKey)

	if s.limiter != nil {
		if d := s.limiter.Check(clientKey); !d.Allowed {
			s.logger.Warn("request rejected by rate limiter",
				"request_id", requestID, "client_key", clientKey,
				"reason", d.Reason, "retry_after", d.RetryAfter)
			return ctx, common.ResourceExhaustedError(d.Reason, d.RetryAfter)
		}
	}

	if s.uploads != nil {
		if err := s.uploads.CheckUpload(image, declaredMIME); err != nil {
			s.logger.Warn("upload rejected",
				"request_id", requestID, "client_key", clientKey, "error", err)
			return ctx, common.InvalidArgumentError(err.Error())
		}
	}

	return ctx, nil
}

func (s *OCRService) mapError(ctx context.Context, op string, err error) error {
	requestID := common.RequestIDFromContext(ctx)
	switch {
	case common.IsValidationError(err):
		s.logger.Warn(op+" rejected", "request_id", requestID, "error", err)
		return common.InvalidArgumentError(err.Error())
	case errors.Is(err, common.ErrOCRUnavailable):
		s.logger.Error(op+" failed, engine unavailable", "request_id", requestID, "error", err)
		return common.UnavailableError("ocr engine unavailable")
	default:
		s.logger.Error(op+" failed", "request_id", requestID, "error", err)
		return common.InternalError(op + " failed")
	}
}

// peerKey derives the rate limit identity from the transport peer address and
// the client's reported user agent.
func peerKey(ctx context.Context) string {
	addr := "unknown"
	if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
		addr = p.Addr.String()
	}
	ua := ""
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if vals := md.Get("user-agent"); len(vals) > 0 {
			ua = vals[0]
		}
	}
	return guard.ClientKey(addr, ua)
}
