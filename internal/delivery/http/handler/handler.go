package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// pathID parses the {id} route variable into an entity ID.
func pathID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
