package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"message": "success"})
}

// handleGetSpaces handles GET /spaces
func (s *Server) handleGetSpaces(w http.ResponseWriter, r *http.Request) {
	req := spacesRequest{Token: headerValue(r, TokenHeader)}
	if err := validateRequest(req); err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := s.service.GetSpaces(r.Context(), *req.Token)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, resp)
}

// handleGetTopics handles GET /topics?space_key=
func (s *Server) handleGetTopics(w http.ResponseWriter, r *http.Request) {
	req := topicsRequest{
		SpaceKey: queryValue(r, "space_key"),
		Token:    headerValue(r, TokenHeader),
	}
	if err := validateRequest(req); err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := s.service.GetTopics(r.Context(), *req.Token, *req.SpaceKey)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, resp)
}

// handleGetMessages handles GET /topics/{topic_id}/messages?from_id=
func (s *Server) handleGetMessages(w http.ResponseWriter, r *http.Request) {
	req := messagesRequest{
		TopicID: mux.Vars(r)["topic_id"],
		FromID:  queryValue(r, "from_id"),
		Token:   headerValue(r, TokenHeader),
	}
	if err := validateRequest(req); err != nil {
		writeError(w, r, err)
		return
	}

	var fromID *int64
	if req.FromID != nil {
		id := parseInt64(*req.FromID)
		fromID = &id
	}

	resp, err := s.service.GetMessages(r.Context(), *req.Token, parseInt64(req.TopicID), fromID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, resp)
}
