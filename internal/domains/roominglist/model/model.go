package model

import (
	"rooming/shared/model"
	"time"
)

const (
	TableName  = "rooming_lists"
	EntityName = "rooming_list"

	FieldID            = "rooming_list_id"
	FieldEventID       = "event_id"
	FieldHotelID       = "hotel_id"
	FieldRfpName       = "rfp_name"
	FieldCutOffDate    = "cut_off_date"
	FieldStatus        = "status"
	FieldAgreementType = "agreement_type"

	FieldEventName = "event_name"
	EventTableName = "events"
)

type RoomingList struct {
	ID            int64     `db:"rooming_list_id" insert:"-"`
	EventID       int64     `db:"event_id"`
	HotelID       int64     `db:"hotel_id"`
	RfpName       string    `db:"rfp_name"`
	CutOffDate    time.Time `db:"cut_off_date"`
	Status        string    `db:"status"`
	AgreementType string    `db:"agreement_type"`
	EventName     *string   `db:"event_name" table:"events"`
	model.Metadata
}

func (RoomingList) GetJoinQuery() string {
	return "LEFT JOIN events ON events.event_id = rooming_lists.event_id"
}
