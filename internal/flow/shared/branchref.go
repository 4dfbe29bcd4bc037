package shared

import (
	"errors"
	"fmt"
	"regexp"
)

// BranchCategory identifies the kind of short-lived branch a workflow manages.
type BranchCategory string

const (
	// BranchCategoryFeature prefixes branches carrying new functionality.
	BranchCategoryFeature BranchCategory = "feature"
	// BranchCategoryHotfix prefixes branches carrying urgent fixes.
	BranchCategoryHotfix BranchCategory = "hotfix"
	// BranchCategoryRelease prefixes branches preparing a versioned release.
	BranchCategoryRelease BranchCategory = "release"
)

const (
	branchNameSeparatorConstant             = "/"
	branchIdentifierPatternConstant         = `^[A-Za-z0-9][A-Za-z0-9._-]*$`
	releaseVersionPatternConstant           = `^\d+\.\d+\.\d+$`
	emptyBranchIdentifierMessageConstant    = "branch identifier is required"
	invalidBranchIdentifierTemplateConstant = "branch identifier %q contains unsupported characters"
	invalidReleaseVersionTemplateConstant   = "version %q is not a semantic version (expected X.Y.Z)"
	emptyReleaseVersionMessageConstant      = "release version is required"
	unknownBranchCategoryTemplateConstant   = "unknown branch category %q"
	supportedBranchCategoryListTextConstant = "feature, hotfix, release"
	branchCategoryGuidanceTemplateConstant  = "%s (supported categories: %s)"
)

var (
	branchIdentifierExpression = regexp.MustCompile(branchIdentifierPatternConstant)
	releaseVersionExpression   = regexp.MustCompile(releaseVersionPatternConstant)

	// ErrBranchIdentifierMissing indicates an empty branch identifier.
	ErrBranchIdentifierMissing = errors.New(emptyBranchIdentifierMessageConstant)
	// ErrReleaseVersionMissing indicates an empty release version.
	ErrReleaseVersionMissing = errors.New(emptyReleaseVersionMessageConstant)
)

// BranchReference pairs a branch category with its identifier.
type BranchReference struct {
	Category   BranchCategory
	Identifier string
}

// QualifiedName returns the full branch name, for example feature/user-auth.
func (reference BranchReference) QualifiedName() string {
	return string(reference.Category) + branchNameSeparatorConstant + reference.Identifier
}

// ValidateBranchIdentifier checks that an identifier is usable as a branch path segment.
func ValidateBranchIdentifier(identifier string) error {
	if len(identifier) == 0 {
		return ErrBranchIdentifierMissing
	}
	if !branchIdentifierExpression.MatchString(identifier) {
		return fmt.Errorf(invalidBranchIdentifierTemplateConstant, identifier)
	}
	return nil
}

// ValidateReleaseVersion checks that a version string follows the X.Y.Z form.
func ValidateReleaseVersion(version string) error {
	if len(version) == 0 {
		return ErrReleaseVersionMissing
	}
	if !releaseVersionExpression.MatchString(version) {
		return fmt.Errorf(invalidReleaseVersionTemplateConstant, version)
	}
	return nil
}

// ParseBranchCategory converts a textual category into a BranchCategory.
func ParseBranchCategory(candidate string) (BranchCategory, error) {
	switch BranchCategory(candidate) {
	case BranchCategoryFeature, BranchCategoryHotfix, BranchCategoryRelease:
		return BranchCategory(candidate), nil
	default:
		categoryError := fmt.Errorf(unknownBranchCategoryTemplateConstant, candidate)
		return "", fmt.Errorf(branchCategoryGuidanceTemplateConstant, categoryError, supportedBranchCategoryListTextConstant)
	}
}
