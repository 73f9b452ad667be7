package predict

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/AeronFaust/CISC-7700X-HW-2/internal/geom"
	"github.com/AeronFaust/CISC-7700X-HW-2/internal/httputil"
	"github.com/AeronFaust/CISC-7700X-HW-2/internal/journal"
	"github.com/AeronFaust/CISC-7700X-HW-2/internal/logging"
	"github.com/AeronFaust/CISC-7700X-HW-2/internal/metrics"
	"github.com/AeronFaust/CISC-7700X-HW-2/internal/predictor"
)

// Recorder stores answered predictions.
type Recorder interface {
	Append(ctx context.Context, e journal.Entry) error
}

type request struct {
	Features []float64 `json:"features"`
	K        *int      `json:"k"`
}

type response struct {
	Label string `json:"label"`
	K     int    `json:"k"`
}

// NewHandler returns the /predict handler. k is used when the request omits
// its own; an explicit k is passed through unchanged. recorder may be nil.
func NewHandler(cfg *Config, classifier predictor.Classifier, k int, recorder Recorder) (http.Handler, error) {
	if classifier == nil {
		return nil, fmt.Errorf("classifier instance is not created")
	}
	return &handler{
		cfg:        cfg,
		classifier: classifier,
		defaultK:   k,
		recorder:   recorder,
	}, nil
}

type handler struct {
	cfg *Config
	// The store behind the classifier is not synchronized, calls are serialized.
	mtx        sync.Mutex
	classifier predictor.Classifier
	defaultK   int
	recorder   Recorder
}

func (h *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req request
	ctx, cancel := context.WithTimeout(r.Context(), h.cfg.RequestTimeout)
	defer cancel()
	logger := logging.FromContext(ctx)
	start := time.Now()

	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		logger.Debug(fmt.Sprintf(`{"error": "method %v is not allowed"}`, r.Method))
		_, _ = fmt.Fprintf(w, `{"error": "method %v is not allowed"}`, r.Method)
		return
	}

	if t := r.Header.Get("content-type"); len(t) < 16 || t[:16] != "application/json" {
		w.WriteHeader(http.StatusUnsupportedMediaType)
		logger.Debug(fmt.Sprintf(`{"error": "%v"}`, "content-type is not application/json"))
		_, _ = fmt.Fprintf(w, `{"error": "%v"}`, "content-type is not application/json")
		return
	}

	defer r.Body.Close()

	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxBodyBytes)
	d := json.NewDecoder(r.Body)
	d.DisallowUnknownFields()
	if err := d.Decode(&req); err != nil {
		metrics.RecordPrediction(ctx, metrics.OutcomeInvalid, time.Since(start))
		httputil.DecodeErr(ctx, w, err)
		return
	}

	query, err := geom.New(req.Features)
	if err != nil {
		metrics.RecordPrediction(ctx, metrics.OutcomeInvalid, time.Since(start))
		httputil.RespBadRequest(ctx, w, `{"error": "invalid input format, %v"}`, err)
		return
	}
	k := h.defaultK
	if req.K != nil {
		k = *req.K
	}

	h.mtx.Lock()
	label, err := h.classifier.Predict(query, k)
	h.mtx.Unlock()
	if err != nil {
		switch {
		case errors.Is(err, predictor.ErrOutOfRange):
			metrics.RecordPrediction(ctx, metrics.OutcomeOutOfRange, time.Since(start))
			httputil.RespUnprocessable(ctx, w, `{"error": "%v"}`, err)
		case errors.Is(err, predictor.ErrEmptyStore):
			metrics.RecordPrediction(ctx, metrics.OutcomeError, time.Since(start))
			logger.Warnf("predict on empty store: %v", err)
			http.Error(w, fmt.Sprintf(`{"error": "%v"}`, err), http.StatusServiceUnavailable)
		default:
			metrics.RecordPrediction(ctx, metrics.OutcomeError, time.Since(start))
			httputil.RespInternalError(ctx, w, `{"error": "predict processing error, %v"}`, err)
		}
		return
	}

	if h.recorder != nil {
		if err := h.recorder.Append(ctx, journal.NewEntry(query, k, label, time.Now().UTC())); err != nil {
			logger.Errorf("unable to journal prediction: %v", err)
		}
	}

	metrics.RecordPrediction(ctx, metrics.OutcomeOK, time.Since(start))
	httputil.RespJSON(ctx, w, http.StatusOK, response{Label: label, K: k})
}
