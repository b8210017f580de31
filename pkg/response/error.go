package response

const (
	ServerError = "Server error, try again later"
	//----------------------
	MovieNotFound      = "Movie not found"
	CatalogUnavailable = "Catalog service is not reachable"
	//----------------------
	UserNotFound    = "Cannot find user"
	ProfileNotFound = "Cannot find profile"
	//----------------------
	InvalidRefreshToken = "Invalid RefreshToken"
	InvalidToken        = "Invalid/Stale Token"
	NotAuthenticated    = "Unauthorized, login required"
	//----------------------
	UserPassNotMatch = "Email and password do not match"
	InvalidEmail     = "Invalid email address"
	ShortPassword    = "Password must be at least 8 characters"
	//----------------------
	BadRequestBody = "Incorrect request body"
	//----------------------
	UsernameAlreadyExist = "This username already exists"
	EmailAlreadyExist    = "This email already exists"
	AlreadyExist         = "Already exist"
	AlreadyFollowed      = "Already followed"
	CantFollowSelf       = "Cannot follow yourself"
	//----------------------
	SignupDisabled = "Signup is temporarily disabled"
	//----------------------
)
