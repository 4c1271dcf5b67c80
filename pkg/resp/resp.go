package resp

import (
	"encoding/json"
	"log"
	"net/http"
)

// WriteJSONResponse - writes v as JSON with the given status
func WriteJSONResponse(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("write response:", err)
	}
}
