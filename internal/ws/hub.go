// Package ws mantiene las conexiones WebSocket del panel de productos y les
// difunde los cambios de stock.
package ws

import (
	"encoding/json"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"go.uber.org/zap"
)

type Hub struct {
	Register   chan *websocket.Conn
	Unregister chan *websocket.Conn
	Broadcast  chan []byte

	clients map[*websocket.Conn]bool
	mutex   sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		Register:   make(chan *websocket.Conn),
		Unregister: make(chan *websocket.Conn),
		Broadcast:  make(chan []byte),
		clients:    make(map[*websocket.Conn]bool),
	}
}

// EventoStock es el mensaje que reciben los paneles conectados cuando cambia
// un producto o su stock.
type EventoStock struct {
	Evento     string `json:"evento"` // producto_creado, producto_actualizado, producto_eliminado, stock_ajustado
	ProductoID uint   `json:"productoId"`
	Nombre     string `json:"nombre,omitempty"`
	Stock      int    `json:"stock"`
}

// Publicar serializa el evento y lo encola sin bloquear al emisor; si nadie
// atiende el canal el evento se descarta.
func (h *Hub) Publicar(evento EventoStock) {
	msg, err := json.Marshal(evento)
	if err != nil {
		return
	}
	select {
	case h.Broadcast <- msg:
	default:
	}
}

func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.Register:
			h.mutex.Lock()
			h.clients[conn] = true
			h.mutex.Unlock()
			zap.S().Debug("ws client connected")

		case conn := <-h.Unregister:
			h.mutex.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mutex.Unlock()

		case message := <-h.Broadcast:
			h.mutex.Lock()
			for conn := range h.clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mutex.Unlock()
		}
	}
}
