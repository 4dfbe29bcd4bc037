package release

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	plainVersionFileNameConstant         = "version.txt"
	upperCaseVersionFileNameConstant     = "VERSION"
	packageManifestFileNameConstant      = "package.json"
	versionFileContentTemplateConstant   = "%s\n"
	packageManifestVersionKeyConstant    = "version"
	packageManifestIndentConstant        = "  "
	versionFilePermissionsConstant       = 0o644
	manifestReadFailureTemplateConstant  = "failed to read %s: %w"
	manifestParseFailureTemplateConstant = "failed to parse %s: %w"
	manifestWriteFailureTemplateConstant = "failed to write %s: %w"
)

// versionMarkerFileNames lists the files inspected for version markers, in order.
var versionMarkerFileNames = []string{plainVersionFileNameConstant, upperCaseVersionFileNameConstant, packageManifestFileNameConstant}

// updateVersionMarkers rewrites known version marker files found in the repository root.
// It returns the names of the files that were updated.
func updateVersionMarkers(repositoryPath string, version string) ([]string, []error) {
	updatedFiles := []string{}
	updateFailures := []error{}
	for _, markerFileName := range versionMarkerFileNames {
		markerPath := filepath.Join(repositoryPath, markerFileName)
		if _, statError := os.Stat(markerPath); statError != nil {
			continue
		}
		var updateError error
		if markerFileName == packageManifestFileNameConstant {
			updateError = updatePackageManifestVersion(markerPath, version)
		} else {
			updateError = os.WriteFile(markerPath, []byte(fmt.Sprintf(versionFileContentTemplateConstant, version)), versionFilePermissionsConstant)
		}
		if updateError != nil {
			updateFailures = append(updateFailures, updateError)
			continue
		}
		updatedFiles = append(updatedFiles, markerFileName)
	}
	return updatedFiles, updateFailures
}

func updatePackageManifestVersion(manifestPath string, version string) error {
	manifestContent, readError := os.ReadFile(manifestPath)
	if readError != nil {
		return fmt.Errorf(manifestReadFailureTemplateConstant, packageManifestFileNameConstant, readError)
	}
	manifestFields := map[string]any{}
	if parseError := json.Unmarshal(manifestContent, &manifestFields); parseError != nil {
		return fmt.Errorf(manifestParseFailureTemplateConstant, packageManifestFileNameConstant, parseError)
	}
	manifestFields[packageManifestVersionKeyConstant] = version
	encodedManifest, encodeError := json.MarshalIndent(manifestFields, "", packageManifestIndentConstant)
	if encodeError != nil {
		return fmt.Errorf(manifestWriteFailureTemplateConstant, packageManifestFileNameConstant, encodeError)
	}
	if writeError := os.WriteFile(manifestPath, encodedManifest, versionFilePermissionsConstant); writeError != nil {
		return fmt.Errorf(manifestWriteFailureTemplateConstant, packageManifestFileNameConstant, writeError)
	}
	return nil
}
