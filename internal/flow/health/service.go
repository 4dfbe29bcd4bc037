package health

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/temirov/gitflow/internal/flow/shared"
	"github.com/temirov/gitflow/internal/ui"
)

const (
	repositoryPathRequiredMessageConstant   = "repository path must be provided"
	repositoryManagerMissingMessageConstant = "repository manager not configured"
	checkingMessageConstant                 = "Performing repository health check..."
	statusMessageTemplateConstant           = "Repository Status: %s"
	issuesHeadingMessageConstant            = "Issues found:"
	recommendationsHeadingMessageConstant   = "Recommendations:"
	metricsHeadingMessageConstant           = "Metrics:"
	uncommittedChangesIssueConstant         = "Uncommitted changes detected"
	unpushedCommitsIssueTemplateConstant    = "%d unpushed commits on current branch"
	largeFilesIssueTemplateConstant         = "%d large files detected"
	frequentCommitsRecommendationConstant   = "Consider making more frequent commits"
	largeFilesRecommendationConstant        = "Consider using Git LFS for large files"
	unpushedCommitsMetricNameConstant       = "unpushed_commits"
	daysSinceCommitMetricNameConstant       = "days_since_last_commit"
	largeFilesMetricNameConstant            = "large_files"
	metricLineTemplateConstant              = "%s: %d"
	largeFilesMetricTemplateConstant        = "%s: %d files"

	largeFileSizeThresholdBytesConstant = 10 * 1024 * 1024
	staleCommitThresholdDaysConstant    = 30
	hoursPerDayConstant                 = 24
)

// ErrRepositoryPathRequired indicates the repository path option was empty.
var ErrRepositoryPathRequired = errors.New(repositoryPathRequiredMessageConstant)

// ErrRepositoryManagerNotConfigured indicates the repository manager dependency was missing.
var ErrRepositoryManagerNotConfigured = errors.New(repositoryManagerMissingMessageConstant)

// Dependencies enumerates external collaborators required for health checks.
type Dependencies struct {
	RepositoryManager shared.GitRepositoryManager
	Reporter          *ui.StatusReporter
	Clock             shared.Clock
}

// Options configures a repository health check.
type Options struct {
	RepositoryPath string
	TargetBranch   string
	RemoteName     string
}

// Service inspects repositories and produces health reports.
type Service struct {
	repositoryManager shared.GitRepositoryManager
	reporter          *ui.StatusReporter
	clock             shared.Clock
}

// NewService constructs a Service from the provided dependencies.
func NewService(dependencies Dependencies) (*Service, error) {
	if dependencies.RepositoryManager == nil {
		return nil, ErrRepositoryManagerNotConfigured
	}
	reporter := dependencies.Reporter
	if reporter == nil {
		reporter = ui.NewStatusReporter(nil)
	}
	clock := dependencies.Clock
	if clock == nil {
		clock = shared.SystemClock{}
	}
	return &Service{repositoryManager: dependencies.RepositoryManager, reporter: reporter, clock: clock}, nil
}

// Check runs all health probes and assembles a report. Probes are best
// effort: a failing probe contributes nothing instead of aborting the check.
func (service *Service) Check(executionContext context.Context, options Options) (Report, error) {
	trimmedRepositoryPath := strings.TrimSpace(options.RepositoryPath)
	if len(trimmedRepositoryPath) == 0 {
		return Report{}, ErrRepositoryPathRequired
	}

	targetBranch := strings.TrimSpace(options.TargetBranch)
	if len(targetBranch) == 0 {
		targetBranch = shared.DefaultMainBranchNameConstant
	}
	remoteName := strings.TrimSpace(options.RemoteName)
	if len(remoteName) == 0 {
		remoteName = shared.DefaultRemoteNameConstant
	}

	service.reporter.Statusf(ui.GlyphHospital, checkingMessageConstant)

	report := Report{Status: ReportStatusHealthy, Issues: []string{}, Recommendations: []string{}}

	if clean, cleanError := service.repositoryManager.CheckCleanWorktree(executionContext, trimmedRepositoryPath); cleanError == nil && !clean {
		report.Issues = append(report.Issues, uncommittedChangesIssueConstant)
		report.Status = ReportStatusWarning
	}

	upstreamReference := remoteName + "/" + targetBranch
	if unpushedCommits, countError := service.repositoryManager.CountCommitsAhead(executionContext, trimmedRepositoryPath, upstreamReference); countError == nil {
		report.Metrics.UnpushedCommits = &unpushedCommits
		if unpushedCommits > 0 {
			report.Issues = append(report.Issues, fmt.Sprintf(unpushedCommitsIssueTemplateConstant, unpushedCommits))
			report.Status = ReportStatusWarning
		}
	}

	if lastCommitTime, timeError := service.repositoryManager.LastCommitTime(executionContext, trimmedRepositoryPath); timeError == nil {
		daysSinceCommit := int(service.clock.Now().Sub(lastCommitTime).Hours() / hoursPerDayConstant)
		report.Metrics.DaysSinceLastCommit = &daysSinceCommit
		if daysSinceCommit > staleCommitThresholdDaysConstant {
			report.Recommendations = append(report.Recommendations, frequentCommitsRecommendationConstant)
		}
	}

	if trackedFiles, listError := service.repositoryManager.ListTrackedFiles(executionContext, trimmedRepositoryPath); listError == nil {
		largeFiles := []LargeFileEntry{}
		for _, trackedFile := range trackedFiles {
			if trackedFile.SizeBytes > largeFileSizeThresholdBytesConstant {
				largeFiles = append(largeFiles, LargeFileEntry{Path: trackedFile.Path, SizeBytes: trackedFile.SizeBytes})
			}
		}
		if len(largeFiles) > 0 {
			report.Issues = append(report.Issues, fmt.Sprintf(largeFilesIssueTemplateConstant, len(largeFiles)))
			report.Recommendations = append(report.Recommendations, largeFilesRecommendationConstant)
			report.Metrics.LargeFiles = largeFiles
			report.Status = ReportStatusWarning
		}
	}

	return report, nil
}

// Render writes the report in the console format.
func (service *Service) Render(report Report) {
	service.reporter.Statusf(ui.GlyphChart, statusMessageTemplateConstant, strings.ToUpper(string(report.Status)))

	if len(report.Issues) > 0 {
		service.reporter.Warningf(issuesHeadingMessageConstant)
		for _, issue := range report.Issues {
			service.reporter.DetailItemf("%s", issue)
		}
	}
	if len(report.Recommendations) > 0 {
		service.reporter.Statusf(ui.GlyphBulb, recommendationsHeadingMessageConstant)
		for _, recommendation := range report.Recommendations {
			service.reporter.DetailItemf("%s", recommendation)
		}
	}

	metricLines := []string{}
	if report.Metrics.UnpushedCommits != nil {
		metricLines = append(metricLines, fmt.Sprintf(metricLineTemplateConstant, unpushedCommitsMetricNameConstant, *report.Metrics.UnpushedCommits))
	}
	if report.Metrics.DaysSinceLastCommit != nil {
		metricLines = append(metricLines, fmt.Sprintf(metricLineTemplateConstant, daysSinceCommitMetricNameConstant, *report.Metrics.DaysSinceLastCommit))
	}
	if len(report.Metrics.LargeFiles) > 0 {
		metricLines = append(metricLines, fmt.Sprintf(largeFilesMetricTemplateConstant, largeFilesMetricNameConstant, len(report.Metrics.LargeFiles)))
	}
	if len(metricLines) > 0 {
		service.reporter.Statusf(ui.GlyphTrend, metricsHeadingMessageConstant)
		for _, metricLine := range metricLines {
			service.reporter.DetailItemf("%s", metricLine)
		}
	}
}
