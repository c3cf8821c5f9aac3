package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"censorship/pkg/models"
	"censorship/pkg/purgomalum"
	"censorship/pkg/words"
)

type API struct {
	ServiceName string

	r  *mux.Router
	pm *purgomalum.Client
	wl *words.List
	lw LogWriter
}

// New returns an API backed by client. Words in wordList are added to every
// request sent to PurgoMalum. Request logging is disabled when logWriter is
// nil.
func New(name string, client *purgomalum.Client, wordList *words.List, logWriter LogWriter) (*API, error) {
	if client == nil {
		return nil, errors.New("purgomalum client is required")
	}

	api := API{
		ServiceName: name,
		r:           mux.NewRouter(),
		pm:          client,
		wl:          wordList,
		lw:          logWriter,
	}
	api.endpoints()

	return &api, nil
}

func (api *API) Router() *mux.Router {
	return api.r
}

func (api *API) endpoints() {
	api.r.Use(api.requestIDMiddleware)
	api.r.Use(api.headerMiddleware)

	api.r.HandleFunc("/check", api.checkComment).Methods(http.MethodPost)
	api.r.HandleFunc("/filter", api.filterText).Methods(http.MethodPost)
	api.r.HandleFunc("/filter/{format}", api.filterTextRaw).Methods(http.MethodPost)

	if api.lw != nil {
		api.r.Use(api.loggingMiddleware(api.lw))
	}
}

func (api *API) checkComment(w http.ResponseWriter, r *http.Request) {
	sID := shorten(GetRequestID(r.Context()))

	var comment models.Comment
	if err := decodeBody(r, &comment); err != nil {
		log.Errorf("[checkComment][%s] failed to decode request body: %v", sID, err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	profane, err := api.pm.ContainsProfanity(r.Context(), comment.Text, api.wl.String())
	if err != nil {
		writeError(w, "checkComment", sID, err)
		return
	}

	status := http.StatusOK
	if profane {
		log.Infof("[checkComment][%s] comment by %q contains profanity", sID, comment.Author)
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, models.CheckResult{ContainsProfanity: profane})
}

func (api *API) filterText(w http.ResponseWriter, r *http.Request) {
	sID := shorten(GetRequestID(r.Context()))

	var req models.FilterRequest
	if err := decodeBody(r, &req); err != nil {
		log.Errorf("[filterText][%s] failed to decode request body: %v", sID, err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := api.pm.RetrieveFilteredText(r.Context(), req.Text, api.options(req))
	if err != nil {
		writeError(w, "filterText", sID, err)
		return
	}

	writeJSON(w, http.StatusOK, models.FilterResult{Result: result})
}

func (api *API) filterTextRaw(w http.ResponseWriter, r *http.Request) {
	sID := shorten(GetRequestID(r.Context()))
	format := purgomalum.Format(mux.Vars(r)["format"])

	var req models.FilterRequest
	if err := decodeBody(r, &req); err != nil {
		log.Errorf("[filterTextRaw][%s] failed to decode request body: %v", sID, err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	raw, err := api.pm.RetrieveFilteredTextRaw(r.Context(), req.Text, format, api.options(req))
	if err != nil {
		writeError(w, "filterTextRaw", sID, err)
		return
	}

	switch raw.Format {
	case purgomalum.FormatJSON:
		writeJSON(w, http.StatusOK, raw.Payload)
		return
	case purgomalum.FormatXML:
		w.Header().Set("Content-Type", "application/xml")
	default:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	}

	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(raw.Body)); err != nil {
		log.Errorf("[filterTextRaw][%s] failed to write response: %v", sID, err)
	}
}

func (api *API) options(req models.FilterRequest) purgomalum.Options {
	return purgomalum.Options{
		Add:      api.wl.Merge(req.Add),
		FillText: req.FillText,
		FillChar: req.FillChar,
	}
}

// decodeBody decodes the JSON request body into v. A value of the wrong JSON
// type is reported as purgomalum.ErrInvalidArgument naming the field.
func decodeBody(r *http.Request, v any) error {
	defer r.Body.Close()

	err := json.NewDecoder(r.Body).Decode(v)
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return fmt.Errorf("%w: input param '%s' is a %s (must be a %s)",
			purgomalum.ErrInvalidArgument, typeErr.Field, typeErr.Value, typeErr.Type)
	}

	return err
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Errorf("[writeJSON] error encoding response: %v", err)
	}
}

// shorten truncates a string to 6 characters if it is longer than 6, appends '...' at the end,
// otherwise it returns the string unchanged.
func shorten(s string) string {
	if len(s) > 6 {
		return s[:6] + "..."
	}
	return s
}
