package aws

import (
	"errors"

	"github.com/aws/smithy-go"
)

// IsDryRunOperation reports whether err is the provider's answer to a dry-run
// request that would have succeeded.
func IsDryRunOperation(err error) bool {
	return isAPIErrorCode(err, "DryRunOperation")
}

// IsUnauthorized reports whether err is an authentication or permission failure.
func IsUnauthorized(err error) bool {
	return isAPIErrorCode(err,
		"UnauthorizedOperation",
		"AuthFailure",
		"AccessDenied",
		"InvalidClientTokenId",
		"ExpiredToken",
	)
}

// IsNotFound reports whether err indicates a missing resource.
func IsNotFound(err error) bool {
	return isAPIErrorCode(err,
		"InvalidAMIID.NotFound",
		"InvalidGroup.NotFound",
		"InvalidSubnetID.NotFound",
		"InvalidInstanceID.NotFound",
		"InvalidSpotInstanceRequestID.NotFound",
		"InvalidKeyPair.NotFound",
		"LoadBalancerNotFound",
		"NoSuchBucket",
		"NoSuchKey",
	)
}

// IsRateLimited reports whether err indicates request throttling.
func IsRateLimited(err error) bool {
	return isAPIErrorCode(err, "RequestLimitExceeded", "Throttling", "ThrottlingException")
}

// isAPIErrorCode checks if err is a smithy API error with one of the given codes.
func isAPIErrorCode(err error, codes ...string) bool {
	if err == nil {
		return false
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		for _, code := range codes {
			if apiErr.ErrorCode() == code {
				return true
			}
		}
	}
	return false
}
