//go:build !release
// +build !release

package resources

const configDir = ".touch64"

func resourcePath() (string, error) {
	return configDir, nil
}
