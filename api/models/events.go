package models

type EventListEntry struct {
	Name   string `json:"name"`
	Pinned bool   `json:"pinned"`
}

type ConnectRequest struct {
	Sheet string `json:"sheet"`
}

type ConnectResponse struct {
	SheetID string `json:"sheet_id"`
	Rows    int    `json:"rows"`
}

type PinRequest struct {
	Initiative string `json:"initiative"`
}
