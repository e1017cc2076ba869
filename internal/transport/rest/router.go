package rest

import "net/http"

// NewRouter serves the static game page and the liveness probe. The caller
// mounts the websocket endpoint on the returned mux.
func NewRouter(staticDir string) *http.ServeMux {
	mux := http.NewServeMux()

	mux.Handle("/", http.FileServer(http.Dir(staticDir)))
	mux.HandleFunc("/ping", PingHandler)

	return mux
}

func PingHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}
