package cmd

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/mkravets/interview-trainer/internal/guidance"
	"github.com/mkravets/interview-trainer/internal/interview"
	"github.com/mkravets/interview-trainer/internal/logger"
	"github.com/mkravets/interview-trainer/internal/report"
	"github.com/mkravets/interview-trainer/internal/util"
	"github.com/mkravets/interview-trainer/internal/validation"
)

const (
	PromptShowFeedback = "Show detailed feedback"
	PromptDumpReport   = "Dump report to file"
	PromptExit         = "Exit"

	// Commands recognized instead of an answer.
	commandSkip = "/skip"
	commandHint = "/hint"
	commandQuit = "/quit"

	answerLogLimit = 80
)

var errExit = errors.New("exit requested")

var completionPrompt = promptui.Select{
	Label: "Session complete. What next?",
	Items: []string{PromptShowFeedback, PromptDumpReport, PromptExit},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run an interactive mock-interview practice session",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("role", "r", "", "interview role (sales, engineer, retail-associate)")
	runCmd.Flags().String("questions-file", "", "YAML file overriding the built-in question bank")

	viper.BindPFlag("role", runCmd.Flags().Lookup("role"))
	viper.BindPFlag("questions-file", runCmd.Flags().Lookup("questions-file"))
}

// run is the main command for the cli.
func run(_ *cobra.Command) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the interview-trainer", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	bank, err := resolveBank(config, logger)
	if err != nil {
		logger.Fatal("loading question bank", zap.Error(err))
	}

	role, err := resolveRole(config)
	if err != nil {
		logger.Fatal("selecting a role", zap.Error(err))
	}

	session := interview.NewSession(bank, role,
		interview.WithMaxFollowUps(config.MaxFollowUpsOrDefault()),
	)
	advisor := guidance.NewAdvisor(
		guidance.WithEncouragementProbability(config.EncouragementProbabilityOrDefault()),
	)

	logger.Info("session created",
		zap.String("session_id", session.ID),
		zap.String("role", string(role)),
		zap.Int("questions", session.TotalQuestions()),
	)

	if err := interviewLoop(session, advisor, logger); err != nil {
		if errors.Is(err, errExit) {
			logger.Info("exiting", zap.String("reason", "quit requested"))
			return
		}
		logger.Fatal("running the session", zap.Error(err))
	}

	result := report.Build(session)
	renderSummary(result)

	logger.Info("session complete",
		zap.String("session_id", session.ID),
		zap.Float64("average_overall", result.Summary.AverageOverall),
	)

	for {
		_, action, err := completionPrompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(action, result, logger); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(action string, result *report.Report, logger *zap.Logger) error {
	switch action {
	case PromptShowFeedback:
		renderDetailedFeedback(result)
		return nil
	case PromptDumpReport:
		filename, err := result.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump report to file: %w", err)
		}
		logger.Info("dumping report to file", zap.String("filename", filename))
		return nil
	case PromptExit:
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

// interviewLoop drives the question/answer exchange until the session
// completes or the user quits.
func interviewLoop(session *interview.Session, advisor *guidance.Advisor, log *zap.Logger) error {
	log = logger.WithSessionFields(log, session.ID, string(session.Role()))

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	followUpText := ""

	for {
		current := session.Current()
		if current == nil {
			return nil
		}

		if followUpText != "" {
			fmt.Printf("\n❓ Follow-up: %s\n", followUpText)
		} else {
			fmt.Printf("\n[%d/%d] ❓ %s\n", session.CurrentIndex()+1, session.TotalQuestions(), current.Prompt)
		}
		fmt.Printf("(answer, or %s / %s / %s)\n> ", commandHint, commandSkip, commandQuit)

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("reading answer: %w", err)
			}
			return errExit
		}

		answer := scanner.Text()

		switch strings.TrimSpace(strings.ToLower(answer)) {
		case commandQuit:
			return errExit
		case commandHint:
			for _, hint := range advisor.HintsFor(current) {
				printMessage(hint)
			}
			continue
		case commandSkip:
			session.Skip()
			followUpText = ""
			continue
		}

		result := validation.Validate(answer, current.Prompt)
		persona := validation.DetectPersona(answer, len(session.Responses()))

		log.Debug("answer classified",
			zap.String("question_id", current.ID),
			zap.String("persona", string(persona)),
			zap.Bool("valid", result.IsValid),
			zap.String("answer", util.TruncateForLog(answer, answerLogLimit)),
		)

		for _, message := range advisor.Advise(result, persona, answer, current) {
			printMessage(message)
		}

		turn := session.SubmitAnswer(answer)

		switch {
		case turn.Complete:
			return nil
		case turn.FollowUp:
			followUpText = session.FollowUpFor(turn.Next)
		default:
			followUpText = ""
			if encouragement, ok := advisor.MaybeEncourage(); ok {
				printMessage(encouragement)
			}
		}
	}
}

func resolveBank(config *Config, logger *zap.Logger) (interview.Bank, error) {
	path := strings.TrimSpace(config.QuestionsFile)
	if path == "" {
		path = strings.TrimSpace(viper.GetString("questions-file"))
	}

	if path == "" {
		return interview.DefaultBank(), nil
	}

	bank, err := interview.LoadBankFile(path)
	if err != nil {
		return nil, err
	}

	logger.Info("using custom question bank", zap.String("path", path), zap.Int("roles", len(bank)))
	return bank, nil
}

func resolveRole(config *Config) (interview.Role, error) {
	if configured := strings.TrimSpace(config.Role); configured != "" {
		return interview.ParseRole(configured), nil
	}

	rolePrompt := promptui.Select{
		Label: "Choose an interview role",
		Items: []string{
			string(interview.RoleSales),
			string(interview.RoleEngineer),
			string(interview.RoleRetail),
		},
	}

	_, selected, err := rolePrompt.Run()
	if err != nil {
		return "", err
	}

	return interview.ParseRole(selected), nil
}

func printMessage(m guidance.Message) {
	fmt.Printf("%s %s\n", m.Icon, m.Text)
}

func renderSummary(result *report.Report) {
	fmt.Printf("\n===== Interview Summary =====\n")
	fmt.Printf("%s\n\n", result.Summary.Text)
	fmt.Printf("Communication: %.1f/10\n", result.Summary.AverageCommunication)
	if result.Summary.AverageTechnical != nil {
		fmt.Printf("Technical:     %.1f/10\n", *result.Summary.AverageTechnical)
	}
	fmt.Printf("Overall:       %.1f/10\n", result.Summary.AverageOverall)

	printList("Key strengths", result.Summary.KeyStrengths)
	printList("Key improvements", result.Summary.KeyImprovements)
	printList("Recommendations", result.Summary.Recommendations)
}

func renderDetailedFeedback(result *report.Report) {
	for i, fb := range result.Feedback {
		fmt.Printf("\n--- Answer %d (question %s) ---\n", i+1, fb.QuestionID)
		fmt.Printf("Communication: %d/10", fb.CommunicationScore)
		if fb.TechnicalScore != nil {
			fmt.Printf(", Technical: %d/10", *fb.TechnicalScore)
		}
		fmt.Printf(", Overall: %d/10\n", fb.OverallScore)

		printList("Strengths", fb.Strengths)
		printList("Improvements", fb.Improvements)
		printList("Suggestions", fb.Suggestions)
	}
}

func printList(title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Printf("\n%s:\n", title)
	for _, item := range items {
		fmt.Printf("  - %s\n", item)
	}
}
