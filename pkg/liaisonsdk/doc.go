/*
Package liaisonsdk is the client SDK and wire types for the liaison API.

The liaison service acts on a user's behalf against Google: it keeps the
user's delegated OAuth credential fresh, reads their primary calendar and
sends plain-text email through their mailbox. It also stores the clients
and templates those emails are addressed to and written from.

# Identity

Every /v1 endpoint except the OAuth callback needs a caller identity. The
service runs in one of two modes and the client is configured to match:

	// Bearer JWT issued by the identity provider
	c := liaisonsdk.NewSDKClient("https://liaison.example.com", liaisonsdk.WithBearerToken(idToken))

	// Behind a gateway that asserts the user in a header
	c := liaisonsdk.NewSDKClient("http://liaison:8080", liaisonsdk.WithUserHeader("X-User-ID", userID))

# Errors

Failed calls return *APIError carrying the HTTP status and the
{error, error_description} body. Use errors.As to inspect it:

	_, err := c.ListEvents(ctx, nil, nil)
	var apiErr *liaisonsdk.APIError
	if errors.As(err, &apiErr) && apiErr.Code == liaisonsdk.ErrorCodeGoogleNotConnected {
		// send the user to /v1/google/connect
	}
*/
package liaisonsdk
