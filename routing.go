package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type addBotRequest struct {
	ChatID   string `json:"chat_id" binding:"required"`
	BotName  string `json:"bot_name" binding:"required"`
	BotToken string `json:"bot_token" binding:"required"`
}

type deleteBotRequest struct {
	ID       int    `json:"id"`
	BotToken string `json:"bot_token"`
	BotName  string `json:"bot_name"`
}

type editBotRequest struct {
	ID        int    `json:"id"`
	BotName   string `json:"bot_name"`
	BotToken  string `json:"bot_token"`
	NewName   string `json:"new_name"`
	NewToken  string `json:"new_token"`
	NewChatID string `json:"new_chat_id"`
}

type notifyRequest struct {
	Text string `json:"text" binding:"required"`
	Bot  string `json:"bot" binding:"required"`
}

// checkStoreForRequest opens the bot store for the duration of one
// request and exposes it through the context. The handle is closed as
// soon as the request ends.
func checkStoreForRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		orm, err := NewDb(config)
		if err != nil {
			c.Error(err)
			c.Abort()
			return
		}
		defer orm.Close()

		c.Set("orm", orm)
		c.Next()
	}
}

func statusHandler(c *gin.Context) {
	c.String(http.StatusOK, "Server Online")
}

func addBotHandler(c *gin.Context) {
	var req addBotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, StatusResponse{
			Status:  "error",
			Message: bindingErrorMessage(err),
		})
		return
	}

	orm := c.MustGet("orm").(*Orm)

	cl, err := getBotByName(orm, req.BotName)
	if err != nil {
		c.Error(err)
		return
	}

	if cl.ID != 0 {
		c.AbortWithStatusJSON(BadRequestStatus("bot_already_created"))
		return
	}

	b := Bot{
		Name:   req.BotName,
		Token:  req.BotToken,
		ChatID: req.ChatID,
	}

	if err := createBot(orm, &b); err != nil {
		if isUniqueViolation(err) {
			c.AbortWithStatusJSON(BadRequestStatus("bot_already_created"))
			return
		}

		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": getLocalizedMessage("bot_created"),
		"bot_id":  b.ID,
	})
}

func deleteBotHandler(c *gin.Context) {
	var req deleteBotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(BadRequest("wrong_data"))
		return
	}

	if req.ID == 0 && req.BotToken == "" && req.BotName == "" {
		c.AbortWithStatusJSON(BadRequest("missing_identifier"))
		return
	}

	orm := c.MustGet("orm").(*Orm)

	var err error
	var messages []string

	// Only one criterion applies even when several identifiers are
	// present: id wins over token, token over name.
	switch {
	case req.ID != 0:
		err = deleteBotByID(orm, req.ID)
		messages = append(messages, getLocalizedTemplateMessage(
			"deleted_by_id", map[string]interface{}{"ID": req.ID}))
	case req.BotToken != "":
		err = deleteBotByToken(orm, req.BotToken)
		messages = append(messages, getLocalizedMessage("deleted_by_token"))
	default:
		err = deleteBotByName(orm, req.BotName)
		messages = append(messages, getLocalizedTemplateMessage(
			"deleted_by_name", map[string]interface{}{"Name": req.BotName}))
	}

	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "messages": messages})
}

func editBotHandler(c *gin.Context) {
	var req editBotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(BadRequest("wrong_data"))
		return
	}

	if req.ID == 0 && req.BotName == "" && req.BotToken == "" {
		c.AbortWithStatusJSON(BadRequest("missing_identifier"))
		return
	}

	changes := map[string]interface{}{}
	if req.NewName != "" {
		changes["name"] = req.NewName
	}
	if req.NewToken != "" {
		changes["token"] = req.NewToken
	}
	if req.NewChatID != "" {
		changes["chat_id"] = req.NewChatID
	}

	if len(changes) == 0 {
		c.AbortWithStatusJSON(BadRequest("missing_new_values"))
		return
	}

	var column string
	var value interface{}

	switch {
	case req.ID != 0:
		column, value = "id", req.ID
	case req.BotToken != "":
		column, value = "token", req.BotToken
	default:
		column, value = "name", req.BotName
	}

	orm := c.MustGet("orm").(*Orm)

	rows, err := updateBot(orm, column, value, changes)
	if err != nil {
		c.Error(err)
		return
	}

	if rows == 0 {
		c.AbortWithStatusJSON(NotFound("bot_not_found"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": getLocalizedMessage("bot_updated"),
	})
}

func notifyHandler(c *gin.Context) {
	var req notifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, StatusResponse{
			Status:  "error",
			Message: bindingErrorMessage(err),
		})
		return
	}

	orm := c.MustGet("orm").(*Orm)

	b, err := getBotByName(orm, req.Bot)
	if err != nil {
		c.Error(err)
		return
	}

	if b.ID == 0 {
		c.AbortWithStatusJSON(BadRequestStatus("bot_not_in_db"))
		return
	}

	// Stored rows are expected complete; a blank field means the record
	// was corrupted outside this service.
	switch {
	case b.Name == "":
		c.AbortWithStatusJSON(BadRequestStatus("name_not_in_db"))
		return
	case b.Token == "":
		c.AbortWithStatusJSON(BadRequestStatus("token_not_in_db"))
		return
	case b.ChatID == "":
		c.AbortWithStatusJSON(BadRequestStatus("chat_id_not_in_db"))
		return
	}

	resp, err := sendNotification(b.Token, b.ChatID, req.Text)
	if err != nil {
		switch e := err.(type) {
		case UpstreamError:
			logger.Error(b.Name, e.Status, e.Body)
			c.AbortWithStatusJSON(e.Status, StatusResponse{
				Status:  "error",
				Message: e.Body,
			})
		case TimeoutError:
			logger.Error(b.Name, e.Error())
			c.AbortWithStatusJSON(http.StatusGatewayTimeout, StatusResponse{
				Status:  "error",
				Message: getLocalizedMessage("provider_timeout"),
			})
		default:
			c.Error(err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":            "sent",
		"telegram_response": resp,
	})
}

func listBotsHandler(c *gin.Context) {
	orm := c.MustGet("orm").(*Orm)

	bots, err := getBots(orm)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "bots": bots})
}
