package common

// AccessTokenHeaderName is the metadata/header key the external API layer
// uses to carry the access token on incoming requests.
const AccessTokenHeaderName = "access_token"
