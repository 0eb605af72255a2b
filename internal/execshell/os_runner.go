package execshell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

const (
	environmentAssignmentTemplateConstant   = "%s=%s"
	executableNotFoundErrorTemplateConstant = "%w: %s"
	executableNotFoundMessageConstant       = "executable not found"
)

// ErrExecutableNotFound indicates the command's executable could not be located on PATH.
var ErrExecutableNotFound = errors.New(executableNotFoundMessageConstant)

// ExecutableLocator resolves an executable name to a path, as exec.LookPath does.
type ExecutableLocator func(executableName string) (string, error)

// OSCommandRunner executes commands using os/exec.
type OSCommandRunner struct {
	locateExecutable ExecutableLocator
}

// NewOSCommandRunner constructs a runner that resolves executables with exec.LookPath.
func NewOSCommandRunner() *OSCommandRunner {
	return NewOSCommandRunnerWithLocator(exec.LookPath)
}

// NewOSCommandRunnerWithLocator constructs a runner with a custom executable locator.
func NewOSCommandRunnerWithLocator(locator ExecutableLocator) *OSCommandRunner {
	if locator == nil {
		locator = exec.LookPath
	}
	return &OSCommandRunner{locateExecutable: locator}
}

// Run executes the command and waits for it to exit. Only failures to start or
// await the process are returned as errors.
func (runner *OSCommandRunner) Run(executionContext context.Context, command ShellCommand) (ExecutionResult, error) {
	executablePath, lookupError := runner.locateExecutable(string(command.Name))
	if lookupError != nil {
		return ExecutionResult{}, fmt.Errorf(executableNotFoundErrorTemplateConstant, ErrExecutableNotFound, lookupError.Error())
	}

	executable := exec.CommandContext(executionContext, executablePath, command.Details.Arguments...)

	if len(command.Details.WorkingDirectory) > 0 {
		executable.Dir = command.Details.WorkingDirectory
	}

	if len(command.Details.EnvironmentVariables) > 0 {
		mergedEnvironment := append([]string{}, os.Environ()...)
		for environmentKey, environmentValue := range command.Details.EnvironmentVariables {
			mergedEnvironment = append(mergedEnvironment, fmt.Sprintf(environmentAssignmentTemplateConstant, environmentKey, environmentValue))
		}
		executable.Env = mergedEnvironment
	}

	var standardOutputBuffer bytes.Buffer
	var standardErrorBuffer bytes.Buffer
	executable.Stdout = &standardOutputBuffer
	executable.Stderr = &standardErrorBuffer

	if len(command.Details.StandardInput) > 0 {
		executable.Stdin = bytes.NewReader(command.Details.StandardInput)
	}

	runError := executable.Run()
	if runError != nil {
		var exitError *exec.ExitError
		if errors.As(runError, &exitError) {
			return ExecutionResult{
				StandardOutput: standardOutputBuffer.String(),
				StandardError:  standardErrorBuffer.String(),
				ExitCode:       exitError.ExitCode(),
			}, nil
		}
		return ExecutionResult{}, runError
	}

	return ExecutionResult{
		StandardOutput: standardOutputBuffer.String(),
		StandardError:  standardErrorBuffer.String(),
		ExitCode:       0,
	}, nil
}
