package card

import "errors"

var (
	ErrInvalidCardNumber  = errors.New("card number cannot be blank")
	ErrInvalidUserID      = errors.New("user id cannot be blank")
	ErrInvalidCompanyID   = errors.New("company id must be greater than zero")
	ErrInvalidCardType    = errors.New("card type must be personal or temporary")
	ErrInvalidDeletedPair = errors.New("deleted at and deleted by must both be set or both be empty")

	ErrCardNotFound      = errors.New("card not found")
	ErrCardNumberTaken   = errors.New("card number is already in use")
	ErrCardAlreadyDeleted = errors.New("card has already been deleted")
)
