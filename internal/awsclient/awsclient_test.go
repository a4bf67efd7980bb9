package awsclient

import (
	"errors"
	"net/http"
	"testing"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	ddnserrors "github.com/ykanggit/goDaddy-API/internal/provider/errors"
)

func Test_WrapError(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		err        error
		errWrapped error
		errMessage string
	}{
		"network": {
			err:        errors.New("dial tcp: i/o timeout"),
			errWrapped: ddnserrors.ErrNetwork,
			errMessage: "network error: dial tcp: i/o timeout",
		},
		"api_error_without_response": {
			err: &smithy.GenericAPIError{
				Code:    "NoSuchHostedZone",
				Message: "No hosted zone found with ID: Z123",
			},
			errWrapped: ddnserrors.ErrProvider,
			errMessage: "provider error: NoSuchHostedZone: No hosted zone found with ID: Z123",
		},
		"api_error_with_response": {
			err: &awshttp.ResponseError{
				ResponseError: &smithyhttp.ResponseError{
					Response: &smithyhttp.Response{
						Response: &http.Response{StatusCode: http.StatusForbidden},
					},
					Err: &smithy.GenericAPIError{
						Code:    "AccessDenied",
						Message: "User is not authorized",
					},
				},
			},
			errWrapped: ddnserrors.ErrProvider,
			errMessage: "provider error: HTTP status 403: AccessDenied: User is not authorized",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := WrapError(testCase.err)

			require.ErrorIs(t, err, testCase.errWrapped)
			assert.EqualError(t, err, testCase.errMessage)
		})
	}
}
