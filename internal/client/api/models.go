package api

// Product is the summary record returned by the product list endpoint.
type Product struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Brand       string  `json:"brand"`
	Price       float64 `json:"price"`
	Rating      float64 `json:"rating"`
	Stock       int     `json:"stock"`
	Thumbnail   string  `json:"thumbnail"`
	Description string  `json:"description"`
}

// ProductDetail is the full record returned when a single product is fetched.
type ProductDetail struct {
	Product
	DiscountPercentage float64  `json:"discountPercentage"`
	Category           string   `json:"category"`
	Weight             float64  `json:"weight"`
	Images             []string `json:"images"`
}

// ProductList is the list envelope: the collection plus the server's
// pagination metadata.
type ProductList struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
	Skip     int       `json:"skip"`
	Limit    int       `json:"limit"`
}

// User is the summary record returned by the user list endpoint.
type User struct {
	ID         int    `json:"id"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	MaidenName string `json:"maidenName"`
	Age        int    `json:"age"`
	Gender     string `json:"gender"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Username   string `json:"username"`
	Password   string `json:"password"`
	BirthDate  string `json:"birthDate"`
	Image      string `json:"image"`
}

// UserList is the list envelope for users.
type UserList struct {
	Users []User `json:"users"`
	Total int    `json:"total"`
	Skip  int    `json:"skip"`
	Limit int    `json:"limit"`
}

// LoginResult is the decoded body of a successful login: the access token
// plus the profile fields the server sends along with it.
type LoginResult struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ID           int    `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Gender       string `json:"gender"`
	Image        string `json:"image"`
}
