package websocket

import (
	"net/http"
	"strings"
	"sync"

	"github.com/golang-jwt/jwt/v4"
	"github.com/gorilla/websocket"
	"github.com/halarumdigital/traki-dispatch/internal/pkg/logger"
	"github.com/halarumdigital/traki-dispatch/internal/pkg/models"
	"github.com/labstack/echo/v4"
)

// conn is one connected driver client. gorilla/websocket allows a single
// concurrent writer, hence the per-connection write lock.
type conn struct {
	ws *websocket.Conn
	mu sync.Mutex
}

func (c *conn) writeJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ws.WriteJSON(v)
}

// Manager manages driver websocket connections and client state
type Manager struct {
	sync.RWMutex
	clients  map[string]*conn
	cfg      models.JWTConfig
	upgrader websocket.Upgrader
}

// NewManager creates a new websocket manager
func NewManager(jwtConfig models.JWTConfig) *Manager {
	return &Manager{
		clients: make(map[string]*conn),
		cfg:     jwtConfig,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// MessageHandler processes one inbound message from a connected driver
type MessageHandler func(driverID string, msg models.WSMessage)

// HandleConnection authenticates, registers and serves one driver connection.
// Blocks until the client disconnects.
func (m *Manager) HandleConnection(c echo.Context, onMessage MessageHandler) error {
	client, err := m.authenticateClient(c)
	if err != nil {
		return err
	}

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	m.register(client.DriverID, ws)
	defer m.deregister(client.DriverID)

	logger.Info("driver connected", logger.String("driver_id", client.DriverID))

	for {
		var msg models.WSMessage
		if err := ws.ReadJSON(&msg); err != nil {
			logger.Debug("driver disconnected",
				logger.String("driver_id", client.DriverID),
				logger.Err(err))
			return nil
		}
		onMessage(client.DriverID, msg)
	}
}

func (m *Manager) register(driverID string, ws *websocket.Conn) {
	m.Lock()
	defer m.Unlock()
	if old, ok := m.clients[driverID]; ok {
		old.ws.Close()
	}
	m.clients[driverID] = &conn{ws: ws}
}

func (m *Manager) deregister(driverID string) {
	m.Lock()
	defer m.Unlock()
	delete(m.clients, driverID)
}

// IsConnected reports whether a driver currently holds a live connection
func (m *Manager) IsConnected(driverID string) bool {
	m.RLock()
	defer m.RUnlock()
	_, ok := m.clients[driverID]
	return ok
}

// SendToDriver sends one event to a single connected driver. Returns false
// when the driver is not connected.
func (m *Manager) SendToDriver(driverID, event string, data interface{}) bool {
	m.RLock()
	client, ok := m.clients[driverID]
	m.RUnlock()
	if !ok {
		return false
	}

	msg, err := models.NewWSMessage(event, data)
	if err != nil {
		logger.Warn("failed to build ws message", logger.Err(err))
		return false
	}
	if err := client.writeJSON(msg); err != nil {
		logger.Debug("failed to write to driver",
			logger.String("driver_id", driverID),
			logger.Err(err))
		return false
	}
	return true
}

// Broadcast sends one event to every connected driver client
func (m *Manager) Broadcast(event string, data interface{}) {
	msg, err := models.NewWSMessage(event, data)
	if err != nil {
		logger.Warn("failed to build ws message", logger.Err(err))
		return
	}

	m.RLock()
	clients := make(map[string]*conn, len(m.clients))
	for id, cl := range m.clients {
		clients[id] = cl
	}
	m.RUnlock()

	for id, cl := range clients {
		if err := cl.writeJSON(msg); err != nil {
			logger.Debug("broadcast write failed", logger.String("driver_id", id), logger.Err(err))
		}
	}
}

// authenticateClient authenticates the websocket client using JWT
func (m *Manager) authenticateClient(c echo.Context) (*models.WebSocketClient, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
	}

	claims, err := m.validateToken(parts[1])
	if err != nil {
		logger.Warn("token validation failed", logger.Err(err))
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	return &models.WebSocketClient{
		DriverID: claims.DriverID,
		Role:     claims.Role,
	}, nil
}

// validateToken validates the JWT token and returns the claims
func (m *Manager) validateToken(tokenString string) (*models.WebSocketClaims, error) {
	claims := &models.WebSocketClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(m.cfg.Secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
