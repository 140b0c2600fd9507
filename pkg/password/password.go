package password

import "golang.org/x/crypto/bcrypt"

// Cost factor de trabajo de bcrypt para los hashes generados.
const Cost = bcrypt.DefaultCost

// Hash genera un hash bcrypt con sal fresca: dos llamadas con el mismo
// plaintext producen digests distintos.
func Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify compara en tiempo constante un plaintext contra un digest bcrypt.
// Un digest malformado nunca produce pánico: retorna false.
func Verify(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
