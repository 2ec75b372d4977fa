package models

import "time"

type NotificationType string

const (
	NotificationQuotationApproved NotificationType = "quotation_approved"
	NotificationQuotationRejected NotificationType = "quotation_rejected"
	NotificationMeetingScheduled  NotificationType = "meeting_scheduled"
	NotificationMeetingReminder   NotificationType = "meeting_reminder"
	NotificationDeliveryReminder  NotificationType = "delivery_reminder"
	NotificationSupplierDiscovery NotificationType = "supplier_discovery"
)

type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"-"`
	Type      NotificationType `json:"type"`
	Message   string           `json:"message"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"createdAt"`
}
