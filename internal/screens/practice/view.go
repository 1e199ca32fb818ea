package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/pathprep/pathprep/internal/ui/components"
	"github.com/pathprep/pathprep/internal/ui/theme"
)

func (s *Screen) View(width, height int) string {
	if s.errMsg != "" {
		return centered(width, height,
			theme.Incorrect.Render("Something went wrong")+"\n\n"+
				theme.Body.Render(s.errMsg)+"\n\n"+
				theme.Hint.Render("Press any key to exit"))
	}

	switch s.phase {
	case phaseDone:
		return s.viewSummary(width, height)
	case phaseFeedback:
		return s.viewFeedback(width, height)
	default:
		return s.viewItem(width, height)
	}
}

func (s *Screen) viewItem(width, height int) string {
	item := s.sess.Items[s.idx]

	title := item.ConceptID
	var skills []string
	if c, ok := s.graph.Get(item.ConceptID); ok {
		title = c.Title
		skills = c.Skills
	}

	var b strings.Builder

	fmt.Fprintf(&b, "%s\n\n",
		theme.Subtitle.Render(fmt.Sprintf("Concept %d of %d", s.idx+1, len(s.sess.Items))))

	card := theme.Title.Render(title) + "\n\n" +
		components.TagBadge(string(item.Tag)) + "\n\n" +
		components.NewScoreBar("Mastery", item.Score, 44).View()
	if len(skills) > 0 {
		card += "\n\n" + theme.Hint.Render("Covers: "+strings.Join(skills, ", "))
	}
	b.WriteString(theme.Card.Render(card))

	b.WriteString("\n\n")
	if s.pending {
		b.WriteString(s.sp.View() + theme.Hint.Render(" Recording..."))
	} else {
		b.WriteString(theme.Body.Render("Work through this concept, then report how it went."))
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("Did you get it right? [y/n]"))
	}

	return centered(width, height, b.String())
}

func (s *Screen) viewFeedback(width, height int) string {
	var b strings.Builder

	if s.last.Success {
		b.WriteString(theme.Correct.Render("✓ Nice work!"))
	} else {
		b.WriteString(theme.Incorrect.Render("✗ No worries, it counts as practice."))
	}
	b.WriteString("\n\n")
	b.WriteString(components.NewScoreBar("Now at", s.last.NewScore, 44).View())

	return centered(width, height, b.String())
}

func (s *Screen) viewSummary(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("Session complete"))
	b.WriteString("\n\n")

	if len(s.outcomes) == 0 {
		b.WriteString(theme.Body.Render("Nothing to practice right now. All caught up!"))
	} else {
		fmt.Fprintf(&b, "%s\n\n",
			theme.Body.Render(fmt.Sprintf("%d of %d correct", s.correctCount(), len(s.outcomes))))
		for _, o := range s.outcomes {
			mark := theme.Correct.Render("✓")
			if !o.Success {
				mark = theme.Incorrect.Render("✗")
			}
			title := o.ConceptID
			if c, ok := s.graph.Get(o.ConceptID); ok {
				title = c.Title
			}
			fmt.Fprintf(&b, "%s %s  %s\n", mark,
				theme.Body.Render(title),
				theme.Hint.Render(fmt.Sprintf("now %d%%", o.NewScore)))
		}
	}

	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("Press any key to exit"))

	return centered(width, height, b.String())
}

func centered(width, height int, content string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
