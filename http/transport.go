package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/go-playground/validator/v10"

	"go-currency-converter"
	"go-currency-converter/exchange"
	"go-currency-converter/format"
	"go-currency-converter/interest"
	"go-currency-converter/stats"
	"go-currency-converter/validate"
)

// Server dependencies for HTTP Server functions
type Server struct {
	Exchange exchange.Service
	Interest interest.Service

	// TopN default number of currencies on the chart
	TopN int

	// Metrics serves /metrics when set
	Metrics http.Handler

	Logger log.Logger

	router   *chi.Mux
	validate *validator.Validate
}

// NewServer returns a Server with its routes in place
func NewServer(ex exchange.Service, in interest.Service, topN int, metrics http.Handler, logger log.Logger) *Server {
	server := &Server{
		Exchange: ex,
		Interest: in,
		TopN:     topN,
		Metrics:  metrics,
		Logger:   logger,
		router:   chi.NewRouter(),
		validate: newValidator(),
	}
	server.routes()
	return server
}

func (s *Server) routes() {
	s.router.Use(middleware.Recoverer)

	s.router.Route("/api", func(r chi.Router) {
		r.Post("/convert", s.convert())
		r.Post("/interest", s.interest())
		r.Get("/currencies", s.currencies())
		r.Get("/stats", s.stats())
		r.Get("/chart/top", s.top())
	})
	s.router.Get("/chart", s.chart())

	if s.Metrics != nil {
		s.router.Method(http.MethodGet, "/metrics", s.Metrics)
	}
}

func (s *Server) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(rw, r)
}

// convert produces HTTP handler for currency conversions
func (s *Server) convert() http.HandlerFunc {

	// request for unmarshalling JSON requests posted by clients
	type request struct {
		FromCurrency currency.Code    `json:"fromCurrency" validate:"required"`
		ToCurrency   currency.Code    `json:"toCurrency" validate:"required"`
		Amount       *currency.Amount `json:"amount" validate:"required"`
	}

	type formatted struct {
		Amount     string `json:"amount"`
		DirectRate string `json:"directRate"`
	}

	// response for marshalling JSON responses to return to clients
	type response struct {
		ConvertedAmount currency.Amount `json:"convertedAmount"`
		DirectRate      currency.Rate   `json:"directRate"`
		Chain           []string        `json:"chain"`
		Formatted       formatted       `json:"formatted"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		var req request
		if !s.decode(rw, r, &req) {
			return
		}

		result, err := s.Exchange.Convert(r.Context(), *req.Amount, req.FromCurrency, req.ToCurrency)
		if err != nil {
			s.encodeError(rw, err)
			return
		}

		s.encode(rw, http.StatusOK, response{
			ConvertedAmount: result.ConvertedAmount,
			DirectRate:      result.DirectRate,
			Chain:           result.Chain,
			Formatted: formatted{
				Amount: fmt.Sprintf("%v %v", format.Amount(float64(result.ConvertedAmount)), req.ToCurrency),
				DirectRate: fmt.Sprintf("1 %v = %v %v",
					req.FromCurrency, format.Amount(float64(result.DirectRate)), req.ToCurrency),
			},
		})
	}
}

// interest produces HTTP handler for compound interest projections
func (s *Server) interest() http.HandlerFunc {

	type request struct {
		Principal   *currency.Amount `json:"principal" validate:"required"`
		RatePercent *float64         `json:"ratePercent" validate:"required"`
		Years       *int             `json:"years" validate:"required"`
	}

	type response struct {
		FutureValue currency.Amount `json:"futureValue"`
		Steps       []string        `json:"steps"`
		Formatted   string          `json:"formatted"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		var req request
		if !s.decode(rw, r, &req) {
			return
		}

		result, err := s.Interest.Compute(r.Context(), *req.Principal, *req.RatePercent, *req.Years)
		if err != nil {
			s.encodeError(rw, err)
			return
		}

		s.encode(rw, http.StatusOK, response{
			FutureValue: result.FutureValue,
			Steps:       result.Steps,
			Formatted:   format.Money(float64(result.FutureValue)),
		})
	}
}

// currencies produces HTTP handler listing the rate table
func (s *Server) currencies() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		records, err := s.Exchange.Currencies(r.Context())
		if err != nil {
			s.encodeError(rw, err)
			return
		}
		s.encode(rw, http.StatusOK, records)
	}
}

// stats produces HTTP handler for rate table statistics
func (s *Server) stats() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		records, err := s.Exchange.Currencies(r.Context())
		if err != nil {
			s.encodeError(rw, err)
			return
		}
		s.encode(rw, http.StatusOK, stats.Compute(records))
	}
}

// top produces HTTP handler for the highest-rate currencies, ?n= overrides the default count
func (s *Server) top() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		n, ok := s.topN(rw, r)
		if !ok {
			return
		}
		records, err := s.Exchange.Currencies(r.Context())
		if err != nil {
			s.encodeError(rw, err)
			return
		}
		s.encode(rw, http.StatusOK, stats.TopN(records, n))
	}
}

func (s *Server) topN(rw http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("n")
	if raw == "" {
		return s.TopN, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		s.encode(rw, http.StatusBadRequest, map[string]string{"error": "n must be a positive integer"})
		return 0, false
	}
	return n, true
}

// decode unmarshals the request body into req and checks required fields.
// It writes the error response itself and returns false when the request cannot be served.
func (s *Server) decode(rw http.ResponseWriter, r *http.Request, req interface{}) bool {
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		s.encode(rw, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return false
	}

	if err := s.validate.Struct(req); err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) && len(errs) > 0 {
			s.encodeError(rw, missing(errs[0].Field()))
			return false
		}
		s.encode(rw, http.StatusBadRequest, map[string]string{"error": "invalid request"})
		return false
	}
	return true
}

// encodeError maps validation failures to 422 and everything else to 500
func (s *Server) encodeError(rw http.ResponseWriter, err error) {
	var failure *validate.Failure
	if errors.As(err, &failure) {
		s.encode(rw, http.StatusUnprocessableEntity, map[string]*validate.Failure{"error": failure})
		return
	}
	level.Error(s.Logger).Log("msg", "request failed", "err", err)
	s.encode(rw, http.StatusInternalServerError, map[string]string{"error": "internal error"})
}

func (s *Server) encode(rw http.ResponseWriter, status int, body interface{}) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)
	if err := json.NewEncoder(rw).Encode(body); err != nil {
		level.Error(s.Logger).Log("msg", "failed json encoding", "err", err)
	}
}

// missingKinds failure kind reported when a required field is absent
var missingKinds = map[string]validate.Kind{
	"amount":       validate.AmountInvalid,
	"principal":    validate.AmountInvalid,
	"fromCurrency": validate.CurrencyUnknown,
	"toCurrency":   validate.CurrencyUnknown,
	"ratePercent":  validate.RateOutOfRange,
	"years":        validate.YearsOutOfRange,
}

func missing(field string) *validate.Failure {
	return &validate.Failure{
		Kind:    missingKinds[field],
		Field:   field,
		Message: fmt.Sprintf("%v is required", field),
	}
}

// newValidator reports fields by their JSON names
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}
