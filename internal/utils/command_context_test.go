package utils_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/gitflow/internal/utils"
)

func TestCommandContextAccessorRoundTripsValues(testInstance *testing.T) {
	accessor := utils.NewCommandContextAccessor()

	testCases := []struct {
		name          string
		buildContext  func() context.Context
		readValue     func(executionContext context.Context) (string, bool)
		expectedValue string
		expectedFound bool
	}{
		{
			name: "configuration_file_path_present",
			buildContext: func() context.Context {
				return accessor.WithConfigurationFilePath(context.Background(), "./config.yaml")
			},
			readValue:     accessor.ConfigurationFilePath,
			expectedValue: "./config.yaml",
			expectedFound: true,
		},
		{
			name: "configuration_file_path_absent",
			buildContext: func() context.Context {
				return context.Background()
			},
			readValue:     accessor.ConfigurationFilePath,
			expectedValue: "",
			expectedFound: false,
		},
		{
			name: "repository_identifier_present",
			buildContext: func() context.Context {
				return accessor.WithRepositoryIdentifier(context.Background(), "acme/widgets")
			},
			readValue:     accessor.RepositoryIdentifier,
			expectedValue: "acme/widgets",
			expectedFound: true,
		},
		{
			name: "repository_identifier_absent",
			buildContext: func() context.Context {
				return context.Background()
			},
			readValue:     accessor.RepositoryIdentifier,
			expectedValue: "",
			expectedFound: false,
		},
	}
	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subtestInstance *testing.T) {
			storedValue, valueFound := testCase.readValue(testCase.buildContext())
			require.Equal(subtestInstance, testCase.expectedFound, valueFound)
			require.Equal(subtestInstance, testCase.expectedValue, storedValue)
		})
	}
}

func TestCommandContextAccessorToleratesNilContext(testInstance *testing.T) {
	accessor := utils.NewCommandContextAccessor()

	_, configurationFound := accessor.ConfigurationFilePath(nil)
	require.False(testInstance, configurationFound)

	_, repositoryFound := accessor.RepositoryIdentifier(nil)
	require.False(testInstance, repositoryFound)

	attachedContext := accessor.WithRepositoryIdentifier(nil, "acme/widgets")
	repositoryIdentifier, repositoryPresent := accessor.RepositoryIdentifier(attachedContext)
	require.True(testInstance, repositoryPresent)
	require.Equal(testInstance, "acme/widgets", repositoryIdentifier)
}
