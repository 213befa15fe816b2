package cmd

import (
	"github.com/AlecAivazis/survey/v2"
)

// prompter asks the terminal user for values.
type prompter interface {
	Input(message, def string) (string, error)
	Select(message string, options []string) (string, error)
	Confirm(message string) (bool, error)
}

type surveyPrompter struct{}

func (surveyPrompter) Input(message, def string) (string, error) {
	var answer string
	err := survey.AskOne(&survey.Input{Message: message, Default: def}, &answer)
	return answer, err
}

func (surveyPrompter) Select(message string, options []string) (string, error) {
	var answer string
	err := survey.AskOne(&survey.Select{Message: message, Options: options}, &answer, survey.WithValidator(survey.Required))
	return answer, err
}

func (surveyPrompter) Confirm(message string) (bool, error) {
	var answer bool
	err := survey.AskOne(&survey.Confirm{Message: message}, &answer)
	return answer, err
}
