package finance

import (
	voicesvc "github.com/amirasaad/pocketpilot/pkg/service/voice"
	"github.com/amirasaad/pocketpilot/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// VoiceCommand feeds one utterance into the user's dialogue.
func VoiceCommand(voiceSvc *voicesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[TextInput](c)
		if input == nil {
			return err // error response already written
		}
		userID, err := common.UserID(c)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		reply, err := voiceSvc.Command(c.Context(), userID, input.Text)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		return c.JSON(VoiceReply{
			Stage:         reply.Stage,
			Prompt:        reply.Prompt,
			Language:      reply.Language,
			TransactionID: reply.TransactionID,
			Ignored:       reply.Ignored,
		})
	}
}

// ResetVoiceSession drops the user's dialogue session.
func ResetVoiceSession(voiceSvc *voicesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.UserID(c)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		if err := voiceSvc.Reset(c.Context(), userID); err != nil {
			return common.ErrorJSON(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
