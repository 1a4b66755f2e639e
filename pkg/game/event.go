package game

import (
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/ZenRepublic/Clubhouse/pkg/identity"
)

// EventKind names a committed state change broadcast on the campaign feed.
type EventKind string

const (
	EventGameStarted     EventKind = "game_started"
	EventGameEnded       EventKind = "game_ended"
	EventStakeClaimed    EventKind = "stake_claimed"
	EventCampaignCreated EventKind = "campaign_created"
	EventCampaignClosed  EventKind = "campaign_closed"
)

// Event is published after the operation that produced it has committed.
type Event struct {
	Kind             EventKind          `json:"kind"`
	House            common.Address     `json:"house"`
	Campaign         common.Address     `json:"campaign"`
	Identity         *identity.Identity `json:"identity,omitempty"`
	Amount           uint64             `json:"amount,omitempty"`
	RewardsAvailable uint64             `json:"rewards_available"`
	ReservedRewards  uint64             `json:"reserved_rewards"`
	ActiveGames      uint64             `json:"active_games"`
	At               time.Time          `json:"at"`
}
