package command

import (
	"fmt"
	"strings"

	"github.com/diegoclair/reminder-bot/internal/domain"
	"github.com/diegoclair/reminder-bot/internal/domain/entity"
)

type CommandType string

const (
	CmdStart         CommandType = "start"
	CmdHelp          CommandType = "help"
	CmdAddReminder   CommandType = "add_reminder"
	CmdListReminders CommandType = "list_reminders"

	// CmdCreate carries reminder fields typed after the Slack slash command.
	CmdCreate  CommandType = "create"
	CmdUnknown CommandType = "unknown"
)

type Command struct {
	Type CommandType
	Raw  string
}

// ParseCommand parses a chat message of the form "/name[@botname] args...".
// ok is false when text is not a command at all; only a message whose very
// first character is the prefix counts.
func ParseCommand(text string) (cmd *Command, ok bool) {
	if !strings.HasPrefix(text, domain.CommandPrefix) {
		return nil, false
	}

	text = strings.TrimSpace(text)
	parts := strings.Fields(text)
	name := strings.TrimPrefix(parts[0], domain.CommandPrefix)
	if at := strings.IndexByte(name, '@'); at >= 0 {
		name = name[:at]
	}

	cmd = &Command{Raw: text}

	switch CommandType(name) {
	case CmdStart, CmdHelp, CmdAddReminder, CmdListReminders:
		cmd.Type = CommandType(name)
	default:
		cmd.Type = CmdUnknown
	}

	return cmd, true
}

// ParseSlackCommand maps the text of a /reminder slash command to a command.
// Five-field input is always reminder input, even when its title starts with
// a subcommand word. Anything else that is not a known subcommand is treated
// as reminder input too.
func ParseSlackCommand(text string) *Command {
	text = strings.TrimSpace(text)
	parts := strings.Fields(text)
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}
	}

	cmd := &Command{Raw: text}
	if _, ok := entity.SplitReminderFields(text); ok {
		cmd.Type = CmdCreate
		return cmd
	}

	switch strings.ToLower(parts[0]) {
	case "help":
		cmd.Type = CmdHelp
	case "start":
		cmd.Type = CmdStart
	case "add":
		cmd.Type = CmdAddReminder
	case "list", "ls":
		cmd.Type = CmdListReminders
	default:
		cmd.Type = CmdCreate
	}

	return cmd
}

const (
	NoRemindersText = "You have no reminders set."

	welcomeText = "Welcome to the Reminder Bot! 🤖\n\n" +
		"Commands:\n" +
		"/add_reminder - Add a new reminder\n" +
		"/list_reminders - List all your reminders\n" +
		"/help - Show this help message"

	formatText = "Title | Description | Date (YYYY-MM-DD) | Frequency (yearly/monthly/once) | Category (task/bill)\n\n" +
		"Example:\n" +
		"Pay Rent | Monthly rent payment | 2024-04-01 | monthly | bill"
)

func GetWelcomeText() string {
	return welcomeText
}

func GetAddReminderText() string {
	return "Please send your reminder in the following format:\n\n" + formatText
}

func GetSlackHelpText() string {
	return `*Reminder Bot* 🤖

• ` + "`/reminder add`" + ` - Show how to add a reminder
• ` + "`/reminder list`" + ` - List all reminders for this channel
• ` + "`/reminder Title | Description | Date | Frequency | Category`" + ` - Create a reminder
• ` + "`/reminder help`" + ` - Show this help message`
}

func GetSlackAddReminderText() string {
	return "Send your reminder with `/reminder` in the following format:\n\n" + formatText
}

// GetCreateErrorText is the reply to reminder input that could not be saved.
// helpCommand is how the user asks for the format on this transport.
func GetCreateErrorText(helpCommand string) string {
	return "❌ Error creating reminder. Please check the format and try again.\n" +
		fmt.Sprintf("Use %s to see the correct format.", helpCommand)
}

func GetCreatedText(r *entity.Reminder) string {
	return "✅ Reminder set successfully!\n\n" +
		fmt.Sprintf("Title: %s\n", r.Title) +
		fmt.Sprintf("Date: %s\n", r.Date.Format(domain.DisplayDateLayout)) +
		fmt.Sprintf("Frequency: %s", r.Frequency)
}

// FormatReminderList renders reminders as blocks separated by blank lines,
// or NoRemindersText when there are none.
func FormatReminderList(reminders []*entity.Reminder) string {
	if len(reminders) == 0 {
		return NoRemindersText
	}

	blocks := make([]string, 0, len(reminders))
	for _, r := range reminders {
		description := r.Description
		if description == "" {
			description = domain.DescriptionPlaceholder
		}

		var b strings.Builder
		fmt.Fprintf(&b, "📅 %s\n", r.Title)
		fmt.Fprintf(&b, "   Description: %s\n", description)
		fmt.Fprintf(&b, "   Date: %s\n", r.Date.Format(domain.DisplayDateLayout))
		fmt.Fprintf(&b, "   Frequency: %s\n", r.Frequency)
		fmt.Fprintf(&b, "   Category: %s\n", r.Category)
		blocks = append(blocks, b.String())
	}

	return strings.Join(blocks, "\n")
}
