package report

const (
	colorConfigurationKeyConstant             = "color"
	folderColumnWidthConfigurationKeyConstant = "folder_column_width"
	branchColumnWidthConfigurationKeyConstant = "branch_column_width"
	configurationKeySeparatorConstant         = "."
)

// CommandConfiguration captures configuration values for the branch report.
type CommandConfiguration struct {
	Color             ColorMode `mapstructure:"color"`
	FolderColumnWidth int       `mapstructure:"folder_column_width"`
	BranchColumnWidth int       `mapstructure:"branch_column_width"`
}

// DefaultCommandConfiguration provides baseline configuration values for the branch report.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		Color:             ColorModeAlways,
		FolderColumnWidth: DefaultFolderColumnWidth,
		BranchColumnWidth: DefaultBranchColumnWidth,
	}
}

// DefaultConfigurationValues returns the defaults keyed for a Viper loader under prefix.
func DefaultConfigurationValues(prefix string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		prefix + configurationKeySeparatorConstant + colorConfigurationKeyConstant:             string(defaults.Color),
		prefix + configurationKeySeparatorConstant + folderColumnWidthConfigurationKeyConstant: defaults.FolderColumnWidth,
		prefix + configurationKeySeparatorConstant + branchColumnWidthConfigurationKeyConstant: defaults.BranchColumnWidth,
	}
}

// Sanitize replaces unset or invalid values with defaults.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	defaults := DefaultCommandConfiguration()
	sanitized := configuration

	if parsedMode, parseError := ParseColorMode(string(configuration.Color)); parseError == nil {
		sanitized.Color = parsedMode
	} else {
		sanitized.Color = defaults.Color
	}
	if sanitized.FolderColumnWidth <= 0 {
		sanitized.FolderColumnWidth = defaults.FolderColumnWidth
	}
	if sanitized.BranchColumnWidth <= 0 {
		sanitized.BranchColumnWidth = defaults.BranchColumnWidth
	}

	return sanitized
}
