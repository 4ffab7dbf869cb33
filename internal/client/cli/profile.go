package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/dmitrijs2005/skillswap/internal/rpc"
)

var (
	skillLevels = []rpc.SkillLevel{rpc.SkillLevelBeginner, rpc.SkillLevelIntermediate, rpc.SkillLevelExpert}
	urgencies   = []rpc.Urgency{rpc.UrgencyLow, rpc.UrgencyMedium, rpc.UrgencyHigh}
)

// parseSkills reads "Name[:Tag], ..." where Tag is a level for offered
// skills and an urgency for wanted ones. Missing tags default to Beginner
// and Low. Later duplicates of a name are dropped.
func parseSkills(line string, wanted bool) ([]rpc.Skill, error) {
	var out []rpc.Skill
	seen := make(map[string]bool)

	for _, item := range strings.Split(line, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		name, tag, _ := strings.Cut(item, ":")
		name, tag = strings.TrimSpace(name), strings.TrimSpace(tag)
		if name == "" {
			return nil, fmt.Errorf("skill name is missing in %q", item)
		}
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true

		s := rpc.Skill{Name: name}
		if wanted {
			s.Urgency = rpc.UrgencyLow
			if tag != "" {
				u, ok := matchTag(tag, urgencies)
				if !ok {
					return nil, fmt.Errorf("unknown urgency %q for %s (use Low, Medium or High)", tag, name)
				}
				s.Urgency = u
			}
		} else {
			s.Level = rpc.SkillLevelBeginner
			if tag != "" {
				l, ok := matchTag(tag, skillLevels)
				if !ok {
					return nil, fmt.Errorf("unknown level %q for %s (use Beginner, Intermediate or Expert)", tag, name)
				}
				s.Level = l
			}
		}
		out = append(out, s)
	}
	return out, nil
}

func matchTag[T ~string](tag string, options []T) (T, bool) {
	for _, o := range options {
		if strings.EqualFold(tag, string(o)) {
			return o, true
		}
	}
	var zero T
	return zero, false
}

func formatSkills(skills []rpc.Skill, wanted bool) string {
	parts := make([]string, 0, len(skills))
	for _, s := range skills {
		tag := string(s.Level)
		if wanted {
			tag = string(s.Urgency)
		}
		if tag == "" {
			parts = append(parts, s.Name)
			continue
		}
		parts = append(parts, s.Name+":"+tag)
	}
	return strings.Join(parts, ", ")
}

// parseLinks reads "platform=handle, ..."; entries without '=' or with an
// empty value are ignored.
func parseLinks(line string) map[string]string {
	links := make(map[string]string)
	for _, item := range strings.Split(line, ",") {
		k, v, ok := strings.Cut(strings.TrimSpace(item), "=")
		k, v = strings.TrimSpace(k), strings.TrimSpace(v)
		if !ok || k == "" || v == "" {
			continue
		}
		links[k] = v
	}
	if len(links) == 0 {
		return nil
	}
	return links
}

func formatLinks(links map[string]string) string {
	keys := make([]string, 0, len(links))
	for k := range links {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+links[k])
	}
	return strings.Join(parts, ", ")
}

func (a *App) navigate(ctx context.Context, req *rpc.NavigateRequest) error {
	st, err := a.api.Navigate(ctx, req)
	if err != nil {
		a.showError(err)
		return err
	}
	a.setState(st)
	return nil
}

// Profile shows the current user's own card on the profile tab.
func (a *App) Profile(ctx context.Context) error {
	if err := a.navigate(ctx, &rpc.NavigateRequest{View: rpc.ViewMain, Tab: rpc.TabProfile}); err != nil {
		return err
	}

	resp, err := a.api.State(ctx)
	if err != nil {
		a.showError(err)
		return err
	}
	if resp.User == nil {
		return nil
	}
	a.setUser(resp.User)
	a.println(renderCard(resp.User))
	return nil
}

// Settings opens the settings page and saves an edited profile. Leaving the
// form invalid keeps the user on the settings page.
func (a *App) Settings(ctx context.Context) error {
	if err := a.navigate(ctx, &rpc.NavigateRequest{View: rpc.ViewSettings}); err != nil {
		return err
	}

	p, ok, err := a.profileForm(ctx, a.currentUser())
	if err != nil || !ok {
		return err
	}

	resp, err := a.api.SaveSettings(ctx, p)
	if err != nil {
		a.showError(err)
		return err
	}

	a.setState(resp.State)
	a.setUser(resp.User)
	a.println(renderSuccess("Settings saved."))
	return nil
}

// Status prints the view, the unread badge and the typing flag.
func (a *App) Status(ctx context.Context) error {
	resp, err := a.api.State(ctx)
	if err != nil {
		a.showError(err)
		return err
	}

	a.mu.Lock()
	a.state = resp.State
	if resp.User != nil {
		a.user = resp.User
	}
	a.notifs = resp.Notifications
	a.mu.Unlock()

	a.println(fmt.Sprintf("view: %s", resp.State))
	if resp.User != nil {
		a.println(fmt.Sprintf("user: %s <%s>", resp.User.Name, resp.User.Email))
	}
	a.println(fmt.Sprintf("unread messages: %d, notifications: %d", resp.UnreadMessages, len(resp.Notifications)))
	if resp.AITyping {
		a.println(mutedStyle.Render("a reply is being typed..."))
	}
	return nil
}
