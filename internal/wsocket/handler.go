package wsocket

import (
	"context"
	"net/http"

	"edutracker_go_backend/internal/models"
	"edutracker_go_backend/internal/services"
	"edutracker_go_backend/internal/utils/broker"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// Handler pushes live collection snapshots to connected clients. Each change
// to a subscribed collection re-delivers the full current matching set, the
// way a document-store live query behaves; snapshots for different
// collections carry no relative ordering guarantee.
type Handler struct {
	taskService         *services.TaskService
	markService         *services.MarkService
	studySessionService *services.StudySessionService
	upgrader            websocket.Upgrader
	messageBroker       *broker.Broker
}

// Message is one snapshot frame sent to the client.
type Message struct {
	Type       string      `json:"type"`
	Collection string      `json:"collection"`
	Data       interface{} `json:"data"`
}

func NewHandler(
	taskService *services.TaskService,
	markService *services.MarkService,
	studySessionService *services.StudySessionService,
	upgrader websocket.Upgrader,
	messageBroker *broker.Broker,
) *Handler {
	return &Handler{
		taskService:         taskService,
		markService:         markService,
		studySessionService: studySessionService,
		upgrader:            upgrader,
		messageBroker:       messageBroker,
	}
}

func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request, user *models.User) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("Failed to upgrade websocket connection")
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// Subscriptions are released on every exit path; a dangling one would
	// keep a standing watch alive after the client is gone.
	taskTopic := broker.Topic(broker.CollectionTasks, user.ID)
	taskChanges := h.messageBroker.Subscribe(taskTopic)
	defer h.messageBroker.Unsubscribe(taskTopic, taskChanges)

	markTopic := broker.Topic(broker.CollectionMarks, user.ID)
	markChanges := h.messageBroker.Subscribe(markTopic)
	defer h.messageBroker.Unsubscribe(markTopic, markChanges)

	sessionTopic := broker.Topic(broker.CollectionStudySessions, user.ID)
	sessionChanges := h.messageBroker.Subscribe(sessionTopic)
	defer h.messageBroker.Unsubscribe(sessionTopic, sessionChanges)

	// Initial full snapshot for every collection on connect.
	h.sendTasksSnapshot(conn, user.ID)
	h.sendMarksSnapshot(conn, user.ID)
	h.sendSessionsSnapshot(conn, user.ID)

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-taskChanges:
				if !ok {
					return
				}
				if err := h.sendTasksSnapshot(conn, user.ID); err != nil {
					cancel()
					return
				}
			case _, ok := <-markChanges:
				if !ok {
					return
				}
				if err := h.sendMarksSnapshot(conn, user.ID); err != nil {
					cancel()
					return
				}
			case _, ok := <-sessionChanges:
				if !ok {
					return
				}
				if err := h.sendSessionsSnapshot(conn, user.ID); err != nil {
					cancel()
					return
				}
			}
		}
	}()

	// Block until the client goes away; reads also service control frames.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Handler) sendTasksSnapshot(conn *websocket.Conn, userID uuid.UUID) error {
	tasks, err := h.taskService.ListOpenTasks(userID)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load tasks snapshot")
		return nil
	}
	return conn.WriteJSON(Message{Type: "snapshot", Collection: broker.CollectionTasks, Data: tasks})
}

func (h *Handler) sendMarksSnapshot(conn *websocket.Conn, userID uuid.UUID) error {
	marks, err := h.markService.ListMarks(userID)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load marks snapshot")
		return nil
	}
	return conn.WriteJSON(Message{Type: "snapshot", Collection: broker.CollectionMarks, Data: marks})
}

func (h *Handler) sendSessionsSnapshot(conn *websocket.Conn, userID uuid.UUID) error {
	sessions, err := h.studySessionService.ListSessions(userID, services.RangeYear)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load study sessions snapshot")
		return nil
	}
	return conn.WriteJSON(Message{Type: "snapshot", Collection: broker.CollectionStudySessions, Data: sessions})
}
