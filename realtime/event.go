package realtime

// broadcast events
const (
	EventDonationNew     = "donation:new"
	EventDonationUpdated = "donation:updated"
	EventDonationDeleted = "donation:deleted"
)

// session events
const (
	EventPing               = "ping"
	EventPong               = "pong"
	EventChatJoin           = "chat:join"
	EventChatMessage        = "chat:message"
	EventUserLocationUpdate = "user:location:update"
	EventUserMoved          = "user:moved"
)

// targeted events
const (
	EventRequestNew        = "request:new"
	EventRequestUpdated    = "request:updated"
	EventNotificationNew   = "notification:new"
	EventUserPointsUpdated = "user:points_updated"
	EventUserBadgesUpdated = "user:badges_updated"
	EventUserLevelUp       = "user:level_up"
)

// Publisher delivers events to live sessions. Delivery is best effort and
// must never block the caller.
type Publisher interface {
	PublishToUser(userID string, event string, payload interface{})
	PublishBroadcast(event string, payload interface{})
	IsOnline(userID string) bool
}
