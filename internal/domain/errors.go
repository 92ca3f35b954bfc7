package domain

import "errors"

var (
	ErrAlreadyInCart         = errors.New("course is already in cart")
	ErrCartItemNotFound      = errors.New("cart item not found")
	ErrCourseNotFound        = errors.New("course not found")
	ErrEmptyCart             = errors.New("cart is empty")
	ErrInvalidPaymentDetails = errors.New("invalid payment details")
	ErrCheckoutFailed        = errors.New("checkout failed")
	ErrNotEnrolled           = errors.New("not enrolled in course")
	ErrInvalidRating         = errors.New("rating must be between 1 and 5")
)
