package dto

type RegisterRequestDTO struct {
	Login    string `json:"login" example:"alice"`
	Password string `json:"password" example:"correct-horse"`
}

type RegisterResponseDTO struct {
	Message string `json:"message"`
}

type LoginRequestDTO struct {
	Login    string `json:"login" example:"alice"`
	Password string `json:"password" example:"correct-horse"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}
