package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/semestra/internal/cli/formatter"
	"github.com/alexanderramin/semestra/internal/domain"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or set your study profile",
	}

	cmd.AddCommand(
		newProfileShowCmd(app),
		newProfileSetupCmd(app),
	)

	return cmd
}

func newProfileShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Profiles.Get(context.Background(), domain.LocalUserID)
			if err != nil {
				return err
			}

			var b strings.Builder
			b.WriteString(formatter.Header("Profile"))
			b.WriteString("\n")
			if p.Name != "" {
				b.WriteString(fmt.Sprintf("  %s  %s\n", formatter.Dim("NAME      "), p.Name))
			}
			if p.University != "" {
				b.WriteString(fmt.Sprintf("  %s  %s\n", formatter.Dim("UNIVERSITY"), p.University))
			}
			if p.Major != "" {
				b.WriteString(fmt.Sprintf("  %s  %s\n", formatter.Dim("MAJOR     "), p.Major))
			}
			b.WriteString(fmt.Sprintf("  %s  %s\n", formatter.Dim("CHRONOTYPE"), string(p.Chronotype)))
			b.WriteString(fmt.Sprintf("  %s  %s\n", formatter.Dim("WORK STYLE"), string(p.WorkStyle)))
			b.WriteString(fmt.Sprintf("  %s  %d min\n", formatter.Dim("SESSION   "), p.SessionMins()))
			fmt.Print(b.String())
			return nil
		},
	}
}

func newProfileSetupCmd(app *App) *cobra.Command {
	var name, university, major, chronotype, workStyle string
	var sessionMins int

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Run the onboarding wizard",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			current, err := app.Profiles.Get(ctx, domain.LocalUserID)
			if err != nil {
				return err
			}

			p := &domain.Profile{
				UserID:               domain.LocalUserID,
				Name:                 firstNonEmpty(name, current.Name),
				University:           firstNonEmpty(university, current.University),
				Major:                firstNonEmpty(major, current.Major),
				Chronotype:           current.Chronotype,
				WorkStyle:            current.WorkStyle,
				PreferredSessionMins: current.PreferredSessionMins,
				CalendarWriteEnabled: current.CalendarWriteEnabled,
			}
			if chronotype != "" {
				p.Chronotype = domain.Chronotype(chronotype)
			}
			if workStyle != "" {
				p.WorkStyle = domain.WorkStyle(workStyle)
			}
			if sessionMins > 0 {
				p.PreferredSessionMins = sessionMins
			}

			flagDriven := cmd.Flags().NFlag() > 0
			if !flagDriven {
				if !app.Interactive {
					return fmt.Errorf("set profile fields with flags in non-interactive mode")
				}
				chrono := string(p.Chronotype)
				style := string(p.WorkStyle)
				session := strconv.Itoa(p.SessionMins())
				if err := profileSetupForm(p, &chrono, &style, &session).Run(); err != nil {
					return err
				}
				p.Chronotype = domain.Chronotype(chrono)
				p.WorkStyle = domain.WorkStyle(style)
				p.PreferredSessionMins = parsePositiveInt(session, domain.DefaultSessionMins)
			}

			if err := app.Profiles.Save(ctx, p); err != nil {
				return err
			}
			fmt.Println(formatter.StyleGreen.Render("✓") + " Profile saved")
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Your name")
	cmd.Flags().StringVar(&university, "university", "", "University")
	cmd.Flags().StringVar(&major, "major", "", "Major")
	cmd.Flags().StringVar(&chronotype, "chronotype", "", "Chronotype (morning|balanced|night)")
	cmd.Flags().StringVar(&workStyle, "work-style", "", "Work style (deep|mixed|sprints)")
	cmd.Flags().IntVar(&sessionMins, "session-mins", 0, "Preferred session length in minutes")

	return cmd
}

func profileSetupForm(p *domain.Profile, chronotype, workStyle, sessionStr *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&p.Name),
			huh.NewInput().
				Title("University").
				Value(&p.University),
			huh.NewInput().
				Title("Major").
				Value(&p.Major),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("When do you focus best?").
				Options(
					huh.NewOption("Mornings", "morning"),
					huh.NewOption("No strong preference", "balanced"),
					huh.NewOption("Late at night", "night"),
				).
				Value(chronotype),
			huh.NewSelect[string]().
				Title("How do you like to work?").
				Options(
					huh.NewOption("Long deep-focus blocks", "deep"),
					huh.NewOption("A mix of both", "mixed"),
					huh.NewOption("Short sprints", "sprints"),
				).
				Value(workStyle),
			huh.NewInput().
				Title("Preferred session length (minutes)").
				Placeholder("60").
				Value(sessionStr).
				Validate(validatePositiveInt),
		),
	).WithTheme(semestraHuhTheme()).WithShowHelp(false)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
