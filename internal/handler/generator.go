package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/randkit/randkit-go/internal/crypto"
	"github.com/randkit/randkit-go/internal/generator"
	"github.com/randkit/randkit-go/internal/model"
	"github.com/randkit/randkit-go/internal/service"
)

const maxBodySize = 1 << 20 // 1MB

// GeneratorHandler handles HTTP requests for random value generation.
type GeneratorHandler struct {
	service *service.GeneratorService
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(svc *service.GeneratorService) *GeneratorHandler {
	return &GeneratorHandler{service: svc}
}

// Register mounts the generator routes on r.
func (h *GeneratorHandler) Register(r chi.Router) {
	r.Post("/api/v1/generate/number", h.HandleNumber)
	r.Post("/api/v1/generate/string", h.HandleString)
	r.Post("/api/v1/generate/password", h.HandlePassword)
	r.Post("/api/v1/password/strength", h.HandleStrength)
	r.Post("/api/v1/password/verify", h.HandleVerify)
	r.Post("/api/v1/generate/uuid", h.HandleUUID)
	r.Post("/api/v1/generate/phone", h.HandlePhone)
	r.Post("/api/v1/generate/username", h.HandleUsername)
	r.Post("/api/v1/generate/email", h.HandleEmail)
	r.Post("/api/v1/generate/ip", h.HandleIP)
	r.Post("/api/v1/generate/date", h.HandleDate)
	r.Post("/api/v1/generate/time", h.HandleTime)
}

// HandleNumber handles POST /api/v1/generate/number requests.
func (h *GeneratorHandler) HandleNumber(w http.ResponseWriter, r *http.Request) {
	var req model.NumberRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := h.service.Number(req)
	respond(w, resp, err)
}

// HandleString handles POST /api/v1/generate/string requests.
func (h *GeneratorHandler) HandleString(w http.ResponseWriter, r *http.Request) {
	var req model.StringRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := h.service.String(req)
	respond(w, resp, err)
}

// HandlePassword handles POST /api/v1/generate/password requests.
func (h *GeneratorHandler) HandlePassword(w http.ResponseWriter, r *http.Request) {
	var req model.PasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := h.service.Password(r.Context(), req)
	respond(w, resp, err)
}

// HandleStrength handles POST /api/v1/password/strength requests.
func (h *GeneratorHandler) HandleStrength(w http.ResponseWriter, r *http.Request) {
	var req model.StrengthRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, h.service.Strength(req))
}

// HandleVerify handles POST /api/v1/password/verify requests.
func (h *GeneratorHandler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	var req model.VerifyRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := h.service.Verify(r.Context(), req)
	respond(w, resp, err)
}

// HandleUUID handles POST /api/v1/generate/uuid requests.
func (h *GeneratorHandler) HandleUUID(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.UUID())
}

// HandlePhone handles POST /api/v1/generate/phone requests.
func (h *GeneratorHandler) HandlePhone(w http.ResponseWriter, r *http.Request) {
	var req model.PhoneRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := h.service.Phone(req)
	respond(w, resp, err)
}

// HandleUsername handles POST /api/v1/generate/username requests.
func (h *GeneratorHandler) HandleUsername(w http.ResponseWriter, r *http.Request) {
	var req model.UsernameRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := h.service.Username(req)
	respond(w, resp, err)
}

// HandleEmail handles POST /api/v1/generate/email requests.
func (h *GeneratorHandler) HandleEmail(w http.ResponseWriter, r *http.Request) {
	var req model.EmailRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := h.service.Email(req)
	respond(w, resp, err)
}

// HandleIP handles POST /api/v1/generate/ip requests.
func (h *GeneratorHandler) HandleIP(w http.ResponseWriter, r *http.Request) {
	var req model.IPRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := h.service.IP(req)
	respond(w, resp, err)
}

// HandleDate handles POST /api/v1/generate/date requests.
func (h *GeneratorHandler) HandleDate(w http.ResponseWriter, r *http.Request) {
	var req model.DateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, h.service.Date(req))
}

// HandleTime handles POST /api/v1/generate/time requests.
func (h *GeneratorHandler) HandleTime(w http.ResponseWriter, r *http.Request) {
	var req model.TimeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, h.service.Time(req))
}

// decodeJSON reads the request body into v. An empty body leaves v at its zero value so every
// option takes its default. It writes the error response and returns false on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Body == nil {
		return true
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return true
		}
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return false
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return false
	}
	return true
}

func respond(w http.ResponseWriter, resp any, err error) {
	if err != nil {
		if msg, ok := validationMessage(err); ok {
			body := errorResponse(err.Error())
			body["message"] = msg
			writeJSON(w, http.StatusBadRequest, body)
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// validationMessage returns the user-facing text for a validation error.
func validationMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, generator.ErrInvalidRange):
		return "最小值必须小于最大值", true
	case errors.Is(err, generator.ErrInvalidLength):
		return "请输入有效的长度", true
	case errors.Is(err, generator.ErrEmptyCharset):
		return "请至少选择一种字符类型", true
	case errors.Is(err, generator.ErrInvalidDomain):
		return "请输入有效的域名", true
	case errors.Is(err, service.ErrInvalidOption):
		return "无效的选项", true
	case errors.Is(err, crypto.ErrInvalidHashFormat), errors.Is(err, crypto.ErrIncompatibleVersion),
		errors.Is(err, crypto.ErrHashTooCostly):
		return "无效的哈希值", true
	}
	return "", false
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) map[string]string {
	return map[string]string{"error": msg}
}
