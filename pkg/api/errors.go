package api

import (
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"censorship/pkg/purgomalum"
)

// writeError maps a client error to a response. Invalid input is the
// caller's fault, everything else is blamed on PurgoMalum.
func writeError(w http.ResponseWriter, handler, sID string, err error) {
	var resErr *purgomalum.ResultError

	switch {
	case errors.Is(err, purgomalum.ErrInvalidArgument):
		log.Debugf("[%s][%s] invalid request: %v", handler, sID, err)
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.As(err, &resErr):
		log.Errorf("[%s][%s] %v", handler, sID, resErr)
		http.Error(w, "Unexpected PurgoMalum Result", http.StatusBadGateway)
	default:
		log.Errorf("[%s][%s] error calling PurgoMalum: %v", handler, sID, err)
		http.Error(w, "PurgoMalum Unavailable", http.StatusBadGateway)
	}
}
