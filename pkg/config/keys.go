package config

// Key names a configuration value. Every recognized key is also the name of
// the process environment variable it is read from.
type Key string

const (
	KeyApplicationID Key = "APPLICATION_ID"
	KeyEnvironment   Key = "ENVIRONMENT"
	KeyAWSRegion     Key = "AWS_REGION"
	KeyAWSAccountID  Key = "AWS_ACCOUNT_ID"
	KeyAWSVPCID      Key = "AWS_VPC_ID"
	KeyImageTag      Key = "IMAGE_TAG"

	// KeyPrefix is derived from the resolved application id and environment.
	// It is never read from a Source.
	KeyPrefix Key = "PREFIX"
)

const (
	DefaultApplicationID = "demo"
	DefaultEnvironment   = "dev"
	DefaultAWSRegion     = ""
	DefaultAWSAccountID  = "954836797250"
	DefaultAWSVPCID      = ""
	DefaultImageTag      = ""
)

// prefixSeparator joins the application id and the environment in PREFIX.
const prefixSeparator = "-"

var recognized = []Key{
	KeyApplicationID,
	KeyEnvironment,
	KeyAWSRegion,
	KeyAWSAccountID,
	KeyAWSVPCID,
	KeyImageTag,
}

var defaults = map[Key]string{
	KeyApplicationID: DefaultApplicationID,
	KeyEnvironment:   DefaultEnvironment,
	KeyAWSRegion:     DefaultAWSRegion,
	KeyAWSAccountID:  DefaultAWSAccountID,
	KeyAWSVPCID:      DefaultAWSVPCID,
	KeyImageTag:      DefaultImageTag,
}

// Keys returns the recognized keys in declaration order. PREFIX is not
// included since it is never read from the environment.
func Keys() []Key {
	out := make([]Key, len(recognized))
	copy(out, recognized)
	return out
}

// Names returns every published name, the recognized keys followed by PREFIX.
func Names() []Key {
	return append(Keys(), KeyPrefix)
}

// Default returns the documented default for key, or the empty string for
// keys that have none.
func Default(key Key) string {
	return defaults[key]
}

func (k Key) String() string {
	return string(k)
}
