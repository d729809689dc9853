package main

import (
	"strings"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
)

// Identifier columns a caller may select a bot by. Update and delete
// never interpolate anything outside this set into query text.
var botIdentifierColumns = map[string]bool{
	"id":    true,
	"token": true,
	"name":  true,
}

func createBot(orm *Orm, b *Bot) error {
	b.Name = strings.ToLower(b.Name)

	return orm.DB.Create(b).Error
}

func getBotByName(orm *Orm, name string) (Bot, error) {
	var b Bot

	err := orm.DB.First(&b, "name = ?", strings.ToLower(name)).Error
	if gorm.IsRecordNotFoundError(err) {
		return b, nil
	}

	return b, err
}

func getBots(orm *Orm) (Bots, error) {
	bots := Bots{}

	return bots, orm.DB.Find(&bots).Error
}

func deleteBotByID(orm *Orm, id int) error {
	return orm.DB.Where("id = ?", id).Delete(Bot{}).Error
}

func deleteBotByToken(orm *Orm, token string) error {
	return orm.DB.Where("token = ?", token).Delete(Bot{}).Error
}

func deleteBotByName(orm *Orm, name string) error {
	return orm.DB.Where("name = ?", strings.ToLower(name)).Delete(Bot{}).Error
}

// updateBot mutates the listed fields of the bot matched by the given
// identifier column and reports how many rows were affected.
func updateBot(orm *Orm, column string, value interface{}, changes map[string]interface{}) (int64, error) {
	if !botIdentifierColumns[column] {
		return 0, errors.Errorf("unknown bot identifier column %q", column)
	}

	if column == "name" {
		value = strings.ToLower(value.(string))
	}

	if name, ok := changes["name"]; ok {
		changes["name"] = strings.ToLower(name.(string))
	}

	res := orm.DB.Model(&Bot{}).Where(column+" = ?", value).Updates(changes)

	return res.RowsAffected, res.Error
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
