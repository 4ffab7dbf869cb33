package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/skillswap/internal/rpc"
)

var (
	primary = lipgloss.Color("#0EA5E9") // Sky
	accent  = lipgloss.Color("#F59E0B") // Amber
	success = lipgloss.Color("#22C55E")
	danger  = lipgloss.Color("#EF4444")
	muted   = lipgloss.Color("#64748B")

	titleStyle = lipgloss.NewStyle().
			Foreground(primary).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(muted)

	errorStyle = lipgloss.NewStyle().
			Foreground(danger)

	successStyle = lipgloss.NewStyle().
			Foreground(success)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(0, 2).
			Width(60)

	labelStyle = lipgloss.NewStyle().
			Foreground(accent).
			Bold(true)

	ownBubble = lipgloss.NewStyle().
			Foreground(primary).
			PaddingLeft(16)

	peerBubble = lipgloss.NewStyle().
			PaddingRight(16)
)

func renderBanner() string {
	return titleStyle.Render("SkillSwap") + "\n" +
		mutedStyle.Render("The best place to learn and teach skills without spending a dime.")
}

func renderError(msg string) string {
	return errorStyle.Render(msg)
}

func renderSuccess(msg string) string {
	return successStyle.Render(msg)
}

func skillList(skills []rpc.Skill, wanted bool) string {
	if len(skills) == 0 {
		return mutedStyle.Render("none")
	}
	parts := make([]string, 0, len(skills))
	for _, s := range skills {
		tag := string(s.Level)
		if wanted {
			tag = string(s.Urgency)
		}
		if tag != "" {
			parts = append(parts, fmt.Sprintf("%s (%s)", s.Name, tag))
		} else {
			parts = append(parts, s.Name)
		}
	}
	return strings.Join(parts, ", ")
}

// renderCard shows a user the way the discovery card and profile page do.
func renderCard(u *rpc.User) string {
	var b strings.Builder

	name := titleStyle.Render(u.Name)
	if u.IsVerified {
		name += " " + successStyle.Render("✔")
	}
	fmt.Fprintln(&b, name)
	fmt.Fprintf(&b, "%s  ★ %.1f\n", mutedStyle.Render(u.Location), u.Rating)
	if u.Bio != "" {
		fmt.Fprintln(&b, u.Bio)
	}
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Offers:"), skillList(u.SkillsOffered, false))
	fmt.Fprintf(&b, "%s %s", labelStyle.Render("Wants: "), skillList(u.SkillsWanted, true))

	if len(u.SocialLinks) > 0 {
		keys := make([]string, 0, len(u.SocialLinks))
		for _, k := range []string{rpc.SocialX, rpc.SocialLinkedIn, rpc.SocialGitHub,
			rpc.SocialTikTok, rpc.SocialInstagram, rpc.SocialYouTube, rpc.SocialGmail} {
			if v := u.SocialLinks[k]; v != "" {
				keys = append(keys, fmt.Sprintf("%s: %s", k, v))
			}
		}
		if len(keys) > 0 {
			fmt.Fprintf(&b, "\n%s %s", labelStyle.Render("Links: "), strings.Join(keys, " | "))
		}
	}

	for _, r := range u.Reviews {
		fmt.Fprintf(&b, "\n%s %s", mutedStyle.Render(fmt.Sprintf("%s (%d/5):", r.Author, r.Rating)), r.Comment)
	}

	return cardStyle.Render(b.String())
}

// renderPlan lays out a lesson plan day by day.
func renderPlan(p *rpc.LessonPlan) string {
	var b strings.Builder
	fmt.Fprintln(&b, titleStyle.Render("7-day plan: "+p.Skill))
	for _, d := range p.Plan {
		fmt.Fprintf(&b, "\n%s %s\n", labelStyle.Render(fmt.Sprintf("Day %d", d.Day)), d.Topic)
		for _, g := range d.Goals {
			fmt.Fprintf(&b, "  • %s\n", g)
		}
		for _, e := range d.Exercises {
			fmt.Fprintf(&b, "  %s %s\n", mutedStyle.Render("exercise:"), e)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func messageBody(m rpc.Message) string {
	var parts []string
	if m.Text != "" {
		parts = append(parts, m.Text)
	}
	if m.ImageURL != "" {
		parts = append(parts, mutedStyle.Render("[image "+m.ImageURL+"]"))
	}
	if m.AudioURL != "" {
		parts = append(parts, mutedStyle.Render("[audio "+m.AudioURL+"]"))
	}
	return strings.Join(parts, " ")
}

// renderMessage draws own messages right-indented and peer messages plain.
func renderMessage(m rpc.Message, meID int64, peer string) string {
	line := fmt.Sprintf("%s %s", messageBody(m), mutedStyle.Render(m.Timestamp))
	if m.SenderID == meID {
		return ownBubble.Render("you: " + line)
	}
	return peerBubble.Render(peer + ": " + line)
}

func renderConversation(c *rpc.ConversationSummary, meID int64) string {
	peer := "unknown"
	if c.Other != nil {
		peer = c.Other.Name
	}

	var b strings.Builder
	fmt.Fprint(&b, titleStyle.Render(peer))
	if len(c.Conversation.Messages) == 0 {
		fmt.Fprint(&b, "\n"+mutedStyle.Render("No messages yet"))
	}
	for _, m := range c.Conversation.Messages {
		fmt.Fprint(&b, "\n"+renderMessage(m, meID, peer))
	}
	return b.String()
}

// renderConversationList numbers rows from 1 so they can be opened by index.
func renderConversationList(list []rpc.ConversationSummary) string {
	if len(list) == 0 {
		return mutedStyle.Render("No connections yet. Swipe right on someone to start chatting.")
	}
	var b strings.Builder
	fmt.Fprintln(&b, titleStyle.Render("Messages"))
	for i, c := range list {
		name := "unknown"
		if c.Other != nil {
			name = c.Other.Name
		}
		unread := ""
		if c.Unread > 0 {
			unread = labelStyle.Render(fmt.Sprintf(" (%d new)", c.Unread))
		}
		fmt.Fprintf(&b, "%2d. %s%s\n    %s\n", i+1, name, unread, mutedStyle.Render(c.Preview))
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderNotifications numbers rows from 1 so they can be dismissed by index.
func renderNotifications(list []rpc.Notification) string {
	if len(list) == 0 {
		return mutedStyle.Render("No new notifications")
	}
	var b strings.Builder
	for i, n := range list {
		fmt.Fprintf(&b, "%2d. %s %s\n", i+1, n.Text, mutedStyle.Render(n.Timestamp))
	}
	return strings.TrimRight(b.String(), "\n")
}
