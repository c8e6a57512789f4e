// Package email provides the email hygiene and subscription tools. Every
// handler here stands in for a Braze REST call: it validates its input and
// renders the response a real client integration would produce, without
// performing network I/O.
package email

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/alucardeht/braze-mcp/internal/tools"
)

// SubscriptionStatus is the set of states Braze accepts for an email
// subscription update.
type SubscriptionStatus string

const (
	StatusSubscribed   SubscriptionStatus = "subscribed"
	StatusUnsubscribed SubscriptionStatus = "unsubscribed"
	StatusOptedIn      SubscriptionStatus = "opted_in"
)

// Subscription is built per request to shape the response; it is never
// stored.
type Subscription struct {
	Email               string
	Status              SubscriptionStatus
	SubscriptionGroupID string
}

func GetTools() []tools.Tool {
	return []tools.Tool{
		NewHardBouncedTool(),
		NewUnsubscribedTool(),
		NewUpdateSubscriptionTool(),
		NewRemoveHardBounceTool(),
		NewRemoveSpamTool(),
		NewBlocklistTool(),
	}
}

// display renders an optional argument for the echoed report, using the
// placeholder Braze-side defaults would fill in.
func display(args tools.Arguments, key string) string {
	v, ok := args[key]
	if !ok {
		return "not specified"
	}
	return fmt.Sprint(v)
}

func queryWindowSchema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"start_date": {
				"type": "string",
				"description": "Start date in YYYY-MM-DD format (optional)"
			},
			"end_date": {
				"type": "string",
				"description": "End date in YYYY-MM-DD format (optional)"
			},
			"limit": {
				"type": "integer",
				"description": "Maximum number of email addresses to return (optional)"
			},
			"offset": {
				"type": "integer",
				"description": "Number of email addresses to skip (optional)"
			}
		}
	}`)
}

func renderQueryWindow(kind string, args tools.Arguments) string {
	return fmt.Sprintf(
		"Retrieved %s emails with parameters:\nStart Date: %s\nEnd Date: %s\nLimit: %s\nOffset: %s",
		kind,
		display(args, "start_date"),
		display(args, "end_date"),
		display(args, "limit"),
		display(args, "offset"),
	)
}

type HardBouncedTool struct{}

func NewHardBouncedTool() *HardBouncedTool { return &HardBouncedTool{} }

func (t *HardBouncedTool) Name() string {
	return "get-hard-bounced-emails"
}

func (t *HardBouncedTool) Description() string {
	return "Query list of hard bounced email addresses"
}

func (t *HardBouncedTool) Annotations() map[string]bool {
	return tools.RemoteReadAnnotations()
}

func (t *HardBouncedTool) RequiresAuth() bool { return true }

func (t *HardBouncedTool) Schema() json.RawMessage {
	return queryWindowSchema()
}

func (t *HardBouncedTool) Execute(ctx context.Context, args tools.Arguments) (string, error) {
	return renderQueryWindow("hard bounced", args), nil
}

type UnsubscribedTool struct{}

func NewUnsubscribedTool() *UnsubscribedTool { return &UnsubscribedTool{} }

func (t *UnsubscribedTool) Name() string {
	return "get-unsubscribed-emails"
}

func (t *UnsubscribedTool) Description() string {
	return "Query list of unsubscribed email addresses"
}

func (t *UnsubscribedTool) Annotations() map[string]bool {
	return tools.RemoteReadAnnotations()
}

func (t *UnsubscribedTool) RequiresAuth() bool { return true }

func (t *UnsubscribedTool) Schema() json.RawMessage {
	return queryWindowSchema()
}

func (t *UnsubscribedTool) Execute(ctx context.Context, args tools.Arguments) (string, error) {
	return renderQueryWindow("unsubscribed", args), nil
}

type UpdateSubscriptionTool struct{}

func NewUpdateSubscriptionTool() *UpdateSubscriptionTool { return &UpdateSubscriptionTool{} }

func (t *UpdateSubscriptionTool) Name() string {
	return "update-email-subscription"
}

func (t *UpdateSubscriptionTool) Description() string {
	return "Change email subscription status"
}

func (t *UpdateSubscriptionTool) Annotations() map[string]bool {
	return tools.RemoteWriteAnnotations()
}

func (t *UpdateSubscriptionTool) RequiresAuth() bool { return true }

func (t *UpdateSubscriptionTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"email": {
				"type": "string",
				"description": "Email address to update"
			},
			"status": {
				"type": "string",
				"enum": ["subscribed", "unsubscribed", "opted_in"],
				"description": "New subscription status"
			},
			"subscription_group_id": {
				"type": "string",
				"description": "Optional subscription group ID"
			}
		},
		"required": ["email", "status"]
	}`)
}

func (t *UpdateSubscriptionTool) Execute(ctx context.Context, args tools.Arguments) (string, error) {
	sub := Subscription{
		Email:               args.String("email"),
		Status:              SubscriptionStatus(args.String("status")),
		SubscriptionGroupID: args.String("subscription_group_id"),
	}

	text := fmt.Sprintf("Updated subscription status for %s to %s", sub.Email, sub.Status)
	if sub.SubscriptionGroupID != "" {
		text += fmt.Sprintf(" in group %s", sub.SubscriptionGroupID)
	}
	return text, nil
}

func emailOnlySchema(action string) json.RawMessage {
	return json.RawMessage(fmt.Sprintf(`{
		"type": "object",
		"properties": {
			"email": {
				"type": "string",
				"description": "Email address to %s"
			}
		},
		"required": ["email"]
	}`, action))
}

type RemoveHardBounceTool struct{}

func NewRemoveHardBounceTool() *RemoveHardBounceTool { return &RemoveHardBounceTool{} }

func (t *RemoveHardBounceTool) Name() string {
	return "remove-hard-bounced-email"
}

func (t *RemoveHardBounceTool) Description() string {
	return "Remove email address from hard bounce list"
}

func (t *RemoveHardBounceTool) Annotations() map[string]bool {
	return tools.RemoteWriteAnnotations()
}

func (t *RemoveHardBounceTool) RequiresAuth() bool { return true }

func (t *RemoveHardBounceTool) Schema() json.RawMessage {
	return emailOnlySchema("remove")
}

func (t *RemoveHardBounceTool) Execute(ctx context.Context, args tools.Arguments) (string, error) {
	return fmt.Sprintf("Removed %s from hard bounce list", args.String("email")), nil
}

type RemoveSpamTool struct{}

func NewRemoveSpamTool() *RemoveSpamTool { return &RemoveSpamTool{} }

func (t *RemoveSpamTool) Name() string {
	return "remove-from-spam"
}

func (t *RemoveSpamTool) Description() string {
	return "Remove email address from spam list"
}

func (t *RemoveSpamTool) Annotations() map[string]bool {
	return tools.RemoteWriteAnnotations()
}

func (t *RemoveSpamTool) RequiresAuth() bool { return true }

func (t *RemoveSpamTool) Schema() json.RawMessage {
	return emailOnlySchema("remove")
}

func (t *RemoveSpamTool) Execute(ctx context.Context, args tools.Arguments) (string, error) {
	return fmt.Sprintf("Removed %s from spam list", args.String("email")), nil
}

type BlocklistTool struct{}

func NewBlocklistTool() *BlocklistTool { return &BlocklistTool{} }

func (t *BlocklistTool) Name() string {
	return "blocklist-email"
}

func (t *BlocklistTool) Description() string {
	return "Add email address to blocklist"
}

func (t *BlocklistTool) Annotations() map[string]bool {
	return tools.RemoteWriteAnnotations()
}

func (t *BlocklistTool) RequiresAuth() bool { return true }

func (t *BlocklistTool) Schema() json.RawMessage {
	return emailOnlySchema("blocklist")
}

func (t *BlocklistTool) Execute(ctx context.Context, args tools.Arguments) (string, error) {
	return fmt.Sprintf("Added %s to blocklist", args.String("email")), nil
}
