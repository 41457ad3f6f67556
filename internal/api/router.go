package api

import "net/http"

// RegisterRoutes wires every API endpoint onto mux.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Quiz
	mux.HandleFunc("GET /generate", h.generateQuiz)
	mux.HandleFunc("GET /generate/status", h.quizStatus)

	// Accounts
	mux.HandleFunc("POST /register", h.register)
	mux.HandleFunc("POST /login", h.login)

	// Profiles
	mux.HandleFunc("POST /add_information", h.addInformation)
	mux.HandleFunc("POST /get_information", h.getInformation)
	mux.HandleFunc("GET /users/swipe", h.swipeDeck)

	// Forum
	mux.HandleFunc("GET /forum/topics", h.listTopics)
	mux.HandleFunc("POST /forum/topics", h.createTopic)
	mux.HandleFunc("GET /forum/topics/{id}", h.getTopic)
	mux.HandleFunc("POST /forum/topics/{id}/comments", h.addComment)

	// Ratings
	mux.HandleFunc("POST /users/{id}/rate", h.rateUser)
	mux.HandleFunc("GET /users/{id}/ratings", h.userRatings)
}
