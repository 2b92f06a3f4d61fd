package socialposting

import (
	"encoding/json"
	"log"
	"net/http"
)

// writeJSON writes a JSON response body with the given status
func writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// failure is the {success:false, error} response shape
type failure struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func writeFailure(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, failure{Success: false, Error: message})
}

// bareError is the {error} shape used by the auth/account failures
type bareError struct {
	Error string `json:"error"`
}

func writeBareError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, bareError{Error: message})
}
