package domain

import "math/rand/v2"

// reservationCodeAlphabet алфавит кода бронирования (без неоднозначных символов нет смысла:
// код вводится редко и сверяется по письму)
const reservationCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// ReservationCodeLength длина человекочитаемого кода бронирования
const ReservationCodeLength = 6

// GenerateReservationCode генерирует человекочитаемый код бронирования
// Уникальность гарантируется ограничением UNIQUE в БД, а не генератором
func GenerateReservationCode() string {
	code := make([]byte, ReservationCodeLength)
	for i := range code {
		code[i] = reservationCodeAlphabet[rand.IntN(len(reservationCodeAlphabet))]
	}
	return string(code)
}
