package main

import "time"

// Bot model. Name is stored lowercased and is unique across all records;
// token and chat id are opaque values for the messaging provider.
type Bot struct {
	ID        int       `gorm:"primary_key" json:"id"`
	Name      string    `gorm:"type:varchar(40);not null;unique" json:"name"`
	Token     string    `gorm:"type:varchar(100);not null" json:"token"`
	ChatID    string    `gorm:"type:varchar(100);not null" json:"chat_id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

//Bots list
type Bots []Bot
