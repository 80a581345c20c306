package models

// BotState enumerates the Telegram login handshake states.
type BotState string

const (
	BotStateAwaitingUsername BotState = "awaiting_username"
	BotStateAwaitingPassword BotState = "awaiting_password"
	BotStateAuthenticated    BotState = "authenticated"
)

// BotSession is the per-remote-user conversation state persisted in the
// session store. PendingUsername is only set between the username and
// password turns; Principal is only set once authenticated.
type BotSession struct {
	State           BotState   `json:"state"`
	PendingUsername string     `json:"pending_username,omitempty"`
	Principal       *Principal `json:"principal,omitempty"`
}
