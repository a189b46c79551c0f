package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
)

// File permissions
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)

// Command constants
const (
	OpenCommand    = "open"
	XDGOpenCommand = "xdg-open"
	CmdCommand     = "cmd"
	StartCommand   = "start"
	AMCommand      = "am"
)

// Command parameters
const (
	WindowsCmdFlag = "/c"
)

// AppDirName is the directory name used under the user config directory
const AppDirName = "former"

// AndroidConfigDir is used on Android where os.UserConfigDir is not available
const AndroidConfigDir = "/data/local/tmp/former"

// EnvConfigDir overrides the config directory
const EnvConfigDir = "FORMER_CONFIG_DIR"

// IsAndroid reports whether the process runs on Android
func IsAndroid() bool {
	return runtime.GOOS == OSAndroid ||
		os.Getenv("ANDROID_DATA") != "" ||
		os.Getenv("ANDROID_ROOT") != "" ||
		filepath.Base(os.Args[0]) == "libdist.so" // fyne Android apps run as libdist.so
}

// ConfigDir returns the directory holding the settings file. FORMER_CONFIG_DIR
// takes precedence over the platform default.
func ConfigDir() (string, error) {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir, nil
	}
	if IsAndroid() {
		return AndroidConfigDir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(base, AppDirName), nil
}

// EnsureConfigDir resolves the config directory and creates it
func EnsureConfigDir() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	if err := CreateDirectoryIfNotExists(dir); err != nil {
		return "", fmt.Errorf("failed to create config directory %s: %w", dir, err)
	}
	return dir, nil
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// OpenFileWithDefaultApp opens the file with the default system application
func OpenFileWithDefaultApp(filePath string) error {
	if _, err := os.Stat(filePath); err != nil {
		return fmt.Errorf("file does not exist: %w", err)
	}

	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	cmd, err := openCommand(runtime.GOOS, absPath)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// openCommand builds the command that opens filePath on goos
func openCommand(goos, filePath string) (*exec.Cmd, error) {
	switch goos {
	case OSDarwin:
		return exec.Command(OpenCommand, filePath), nil
	case OSWindows:
		return exec.Command(CmdCommand, WindowsCmdFlag, StartCommand, "", filePath), nil
	case OSLinux:
		return exec.Command(XDGOpenCommand, filePath), nil
	case OSAndroid:
		return exec.Command(AMCommand, "start", "-a", "android.intent.action.VIEW", "-d", "file://"+filePath, "-t", "text/*"), nil
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", goos)
	}
}
