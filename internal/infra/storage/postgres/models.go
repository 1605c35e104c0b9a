package postgres

import (
	"time"

	"github.com/gabapcia/valwatch/internal/chainevents"
	"github.com/gabapcia/valwatch/internal/notification"
)

type networkModel struct {
	ID            uint64 `gorm:"primaryKey"`
	Name          string `gorm:"uniqueIndex;not null"`
	DisplayName   string `gorm:"not null"`
	TokenTicker   string `gorm:"not null"`
	TokenDecimals uint8  `gorm:"not null"`
	SS58Prefix    uint16 `gorm:"column:ss58_prefix;not null"`
}

func (networkModel) TableName() string { return "networks" }

func (m networkModel) toNetwork() notification.Network {
	return notification.Network{
		Name:          m.Name,
		DisplayName:   m.DisplayName,
		TokenTicker:   m.TokenTicker,
		TokenDecimals: m.TokenDecimals,
		SS58Prefix:    m.SS58Prefix,
	}
}

type ruleModel struct {
	ID         uint64 `gorm:"primaryKey"`
	UserID     uint64 `gorm:"index;not null"`
	Network    string `gorm:"index:idx_rule_lookup;not null"`
	TypeCode   string `gorm:"index:idx_rule_lookup;not null"`
	PeriodType string `gorm:"not null"`
	Period     uint16 `gorm:"not null;default:1"`
	Enabled    bool   `gorm:"not null"`
	CreatedAt  time.Time

	Validators []ruleValidatorModel `gorm:"foreignKey:RuleID;constraint:OnDelete:CASCADE"`
	Channels   []ruleChannelModel   `gorm:"foreignKey:RuleID;constraint:OnDelete:CASCADE"`
}

func (ruleModel) TableName() string { return "notification_rules" }

type ruleValidatorModel struct {
	ID      uint64 `gorm:"primaryKey"`
	RuleID  uint64 `gorm:"uniqueIndex:idx_rule_validator;not null"`
	Account string `gorm:"uniqueIndex:idx_rule_validator;not null"`
}

func (ruleValidatorModel) TableName() string { return "notification_rule_validators" }

type ruleChannelModel struct {
	ID      uint64 `gorm:"primaryKey"`
	RuleID  uint64 `gorm:"index;not null"`
	Channel string `gorm:"not null"`
	Target  string `gorm:"not null"`
}

func (ruleChannelModel) TableName() string { return "notification_rule_channels" }

func fromRule(r notification.Rule) ruleModel {
	m := ruleModel{
		ID:         r.ID,
		UserID:     r.UserID,
		Network:    r.Network,
		TypeCode:   string(r.TypeCode),
		PeriodType: string(r.PeriodType),
		Period:     r.Period,
		Enabled:    r.Enabled,
		CreatedAt:  r.CreatedAt,
	}

	for _, account := range r.Validators {
		m.Validators = append(m.Validators, ruleValidatorModel{Account: account})
	}

	for _, ch := range r.Channels {
		m.Channels = append(m.Channels, ruleChannelModel{ID: ch.ID, Channel: string(ch.Channel), Target: ch.Target})
	}

	return m
}

func (m ruleModel) toRule() notification.Rule {
	r := notification.Rule{
		ID:         m.ID,
		UserID:     m.UserID,
		Network:    m.Network,
		TypeCode:   notification.TypeCode(m.TypeCode),
		PeriodType: notification.PeriodType(m.PeriodType),
		Period:     m.Period,
		Enabled:    m.Enabled,
		CreatedAt:  m.CreatedAt,
	}

	for _, v := range m.Validators {
		r.Validators = append(r.Validators, v.Account)
	}

	for _, ch := range m.Channels {
		r.Channels = append(r.Channels, notification.RuleChannel{
			ID:      ch.ID,
			Channel: notification.Channel(ch.Channel),
			Target:  ch.Target,
		})
	}

	return r
}

type notificationModel struct {
	ID            uint64 `gorm:"primaryKey"`
	UserID        uint64 `gorm:"index;not null"`
	RuleID        uint64 `gorm:"not null"`
	RuleChannelID uint64 `gorm:"uniqueIndex:idx_notification_event;not null"`
	EventKey      string `gorm:"uniqueIndex:idx_notification_event;not null"`
	Network       string `gorm:"not null"`
	TypeCode      string `gorm:"not null"`
	PeriodType    string `gorm:"index:idx_notification_due;not null"`
	Period        uint16 `gorm:"not null"`
	Channel       string `gorm:"not null"`
	Target        string `gorm:"not null"`
	Account       string
	BlockHeight   uint64 `gorm:"not null"`
	Payload       []byte `gorm:"type:jsonb;not null"`
	CreatedAt     time.Time
	SentAt        *time.Time `gorm:"index:idx_notification_due"`
	MessageID     string
}

func (notificationModel) TableName() string { return "notifications" }

func fromNotification(n notification.Notification) notificationModel {
	return notificationModel{
		ID:            n.ID,
		UserID:        n.UserID,
		RuleID:        n.RuleID,
		RuleChannelID: n.RuleChannelID,
		EventKey:      n.EventKey,
		Network:       n.Network,
		TypeCode:      string(n.TypeCode),
		PeriodType:    string(n.PeriodType),
		Period:        n.Period,
		Channel:       string(n.Channel),
		Target:        n.Target,
		Account:       n.Account,
		BlockHeight:   n.BlockHeight,
		Payload:       n.Payload,
		CreatedAt:     n.CreatedAt,
		SentAt:        n.SentAt,
		MessageID:     n.MessageID,
	}
}

func (m notificationModel) toNotification() notification.Notification {
	return notification.Notification{
		ID:            m.ID,
		UserID:        m.UserID,
		RuleID:        m.RuleID,
		RuleChannelID: m.RuleChannelID,
		Network:       m.Network,
		TypeCode:      notification.TypeCode(m.TypeCode),
		PeriodType:    notification.PeriodType(m.PeriodType),
		Period:        m.Period,
		Channel:       notification.Channel(m.Channel),
		Target:        m.Target,
		Account:       m.Account,
		BlockHeight:   m.BlockHeight,
		EventKey:      m.EventKey,
		Payload:       m.Payload,
		CreatedAt:     m.CreatedAt,
		SentAt:        m.SentAt,
		MessageID:     m.MessageID,
	}
}

type auditEventModel struct {
	ID          uint64 `gorm:"primaryKey"`
	EventKey    string `gorm:"uniqueIndex;not null"`
	Network     string `gorm:"index:idx_audit_validator;not null"`
	Account     string `gorm:"index:idx_audit_validator"`
	TypeCode    string `gorm:"not null"`
	BlockHeight uint64 `gorm:"not null"`
	Data        []byte `gorm:"type:jsonb"`
	CreatedAt   time.Time
}

func (auditEventModel) TableName() string { return "validator_audit_events" }

type chainEventModel struct {
	ID         uint64 `gorm:"primaryKey"`
	Network    string `gorm:"index:idx_chain_event_block;not null"`
	BlockHash  string `gorm:"index:idx_chain_event_block;not null"`
	EventIndex uint32 `gorm:"not null"`
	Kind       string `gorm:"not null"`
	Account    string
	Data       []byte `gorm:"type:jsonb"`
	CreatedAt  time.Time
}

func (chainEventModel) TableName() string { return "chain_events" }

func (m chainEventModel) toFeedEvent() chainevents.FeedEvent {
	return chainevents.FeedEvent{
		ID:         m.ID,
		BlockHash:  m.BlockHash,
		EventIndex: m.EventIndex,
		Kind:       m.Kind,
		Account:    m.Account,
		Data:       m.Data,
	}
}
