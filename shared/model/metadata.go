package model

type Metadata struct {
	CreatedAt Timestamp `db:"created_at" json:"created_at"`
}
