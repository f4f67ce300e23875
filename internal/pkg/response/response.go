package response

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/theoyjy/IntelliMap/internal/entity"
)

const successMessage = "Success"

// JSON writes a JSON response
func JSON(w http.ResponseWriter, status int, data any) {
	var buf bytes.Buffer
	if data != nil {
		if err := json.NewEncoder(&buf).Encode(data); err != nil {
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

// Success wraps data in the success envelope
func Success(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, entity.APIResponse{
		Code:    entity.CodeSuccess,
		Data:    data,
		Message: successMessage,
	})
}

// Error writes the failure envelope with an empty data object
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, entity.APIResponse{
		Code:    entity.CodeFailure,
		Data:    struct{}{},
		Message: message,
	})
}
