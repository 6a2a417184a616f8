package models

type Account struct {
	ID       int    `json:"account_id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type Message struct {
	ID              int    `json:"message_id"`
	PostedBy        int    `json:"posted_by"`
	Text            string `json:"message_text"`
	TimePostedEpoch int64  `json:"time_posted_epoch"`
}
