// ABOUTME: Interactive shell hosting one tracking session.
// ABOUTME: Reminders tick in the background while commands are read from stdin.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/harperreed/nutri/internal/models"
	"github.com/harperreed/nutri/internal/report"
	"github.com/harperreed/nutri/internal/session"
	"github.com/spf13/cobra"
)

const shellHelp = `Commands:
  eat <food-id> [servings] [YYYY-MM-DD HH:MM]   record food (default 1 serving)
  water [+N|-N]                                 adjust water servings (default +1)
  exercise [+N|-N]                              adjust exercise minutes (default +15)
  goals key=N ...                               calories protein carbs fat water exercise
  profile key=value ...                         age gender weight height activity goal
  profile clear                                 remove the profile
  status                                        today's dashboard
  foods                                         list the food catalog
  notes [unread]                                list notifications
  read <id-prefix>|all                          mark notifications read
  export [json|yaml|md]                         print today's report
  help                                          show this help
  quit                                          leave the shell`

var shellCmd = &cobra.Command{
	Use:     "shell",
	Aliases: []string{"sh"},
	Short:   "Track a day interactively",
	Long: `Start an interactive session. Food, water, and exercise are tracked in
memory, and meal and hydration reminders fire in the background while the
shell is open. Nothing is saved when you quit.

` + shellHelp,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession()
		if err != nil {
			return err
		}
		defer sess.Close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := sess.StartReminders(ctx); err != nil {
			return err
		}
		return runShell(ctx, sess, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func runShell(ctx context.Context, sess *session.Session, in io.Reader, out io.Writer) error {
	sh := &shell{sess: sess, out: out}
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	fmt.Fprintln(out, "Type 'help' for commands.")
	for {
		sh.prompt()
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			quit, err := sh.exec(line)
			if err != nil {
				color.New(color.FgRed).Fprintf(out, "error: %v\n", err)
			}
			if quit {
				return nil
			}
		}
	}
}

type shell struct {
	sess *session.Session
	out  io.Writer
}

func (sh *shell) prompt() {
	if n := sh.sess.UnreadCount(); n > 0 {
		fmt.Fprintf(sh.out, "nutri (%d unread)> ", n)
		return
	}
	fmt.Fprint(sh.out, "nutri> ")
}

// exec runs one command line and reports whether the shell should exit.
func (sh *shell) exec(line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	verb, args := strings.ToLower(fields[0]), fields[1:]

	switch verb {
	case "quit", "exit", "q":
		return true, nil
	case "help", "?":
		fmt.Fprintln(sh.out, shellHelp)
	case "eat", "e":
		return false, sh.eat(args)
	case "water", "w":
		delta, err := parseDelta(args, 1)
		if err != nil {
			return false, err
		}
		sh.announce(func() { fmt.Fprintf(sh.out, "Water: %d servings\n", sh.sess.AdjustWater(delta)) })
	case "exercise", "x":
		delta, err := parseDelta(args, 15)
		if err != nil {
			return false, err
		}
		sh.announce(func() { fmt.Fprintf(sh.out, "Exercise: %d minutes\n", sh.sess.AdjustExercise(delta)) })
	case "goals", "g":
		patch, err := parseGoalsPatch(args)
		if err != nil {
			return false, err
		}
		g := sh.sess.SetGoals(patch)
		fmt.Fprintf(sh.out, "Goals: %d kcal, %dg protein, %dg carbs, %dg fat, %d water, %d min\n",
			g.Calories, g.ProteinG, g.CarbsG, g.FatG, g.WaterServings, g.ExerciseMinutes)
	case "profile", "p":
		return false, sh.profile(args)
	case "status", "s":
		renderStatus(sh.out, sh.sess.Snapshot())
	case "foods", "f":
		printFoods(sh.out, sh.sess.Catalog().All())
	case "notes", "n":
		unreadOnly := len(args) > 0 && strings.EqualFold(args[0], "unread")
		renderNotifications(sh.out, sh.sess.Notifications(), unreadOnly, sh.sess.Location())
	case "read", "r":
		return false, sh.read(args)
	case "export":
		format := ""
		if len(args) > 0 {
			format = args[0]
		}
		data := report.Build(sh.sess.Snapshot(), sh.sess.Notifications(), sh.sess.Location())
		out, err := report.Render(data, format)
		if err != nil {
			return false, err
		}
		fmt.Fprintln(sh.out, strings.TrimRight(string(out), "\n"))
	default:
		return false, fmt.Errorf("unknown command: %s (try 'help')", verb)
	}
	return false, nil
}

func (sh *shell) eat(args []string) error {
	id, qty, at, err := parseEat(args, sh.sess.Location())
	if err != nil {
		return err
	}
	var recErr error
	sh.announce(func() {
		var e models.ConsumedEntry
		if at.IsZero() {
			e, recErr = sh.sess.RecordFood(id, qty)
		} else {
			e, recErr = sh.sess.RecordFoodAt(id, qty, at)
		}
		if recErr == nil {
			fmt.Fprintf(sh.out, "Recorded %g x %s (%.0f kcal)\n", e.Quantity, e.Food.Name, e.Calories())
		}
	})
	return recErr
}

func (sh *shell) profile(args []string) error {
	if len(args) == 1 && strings.EqualFold(args[0], "clear") {
		sh.sess.ClearProfile()
		fmt.Fprintf(sh.out, "Profile cleared. Calorie target: %d kcal\n", sh.sess.CalorieTarget())
		return nil
	}
	p, err := parseProfile(args, baseProfile(sh.sess.Profile()))
	if err != nil {
		return err
	}
	var setErr error
	sh.announce(func() {
		var target int
		target, setErr = sh.sess.SetProfile(p)
		if setErr == nil {
			fmt.Fprintf(sh.out, "Profile set. Calorie target: %d kcal\n", target)
		}
	})
	return setErr
}

func (sh *shell) read(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: read <id-prefix>|all")
	}
	if strings.EqualFold(args[0], "all") {
		sh.sess.MarkAllRead()
		fmt.Fprintln(sh.out, "All notifications marked as read.")
		return nil
	}
	id, err := sh.sess.ResolveNotification(args[0])
	if err != nil {
		return err
	}
	if !sh.sess.MarkNotificationRead(id) {
		return fmt.Errorf("not found: %s", args[0])
	}
	fmt.Fprintf(sh.out, "Marked %s as read.\n", id.String()[:8])
	return nil
}

// announce runs fn and prints the achievements it produced. Reminders
// come only from scheduler ticks, so they are left to the notes command.
func (sh *shell) announce(fn func()) {
	seen := make(map[uuid.UUID]struct{})
	for _, n := range sh.sess.Notifications() {
		seen[n.ID] = struct{}{}
	}
	fn()
	all := sh.sess.Notifications()
	for _, n := range all {
		if _, ok := seen[n.ID]; ok || n.Kind != models.KindAchievement {
			continue
		}
		kindColor(n.Kind).Fprintf(sh.out, "  %s\n", n.Message)
	}
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
