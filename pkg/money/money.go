// Пакет money — форматирование сумм для дашборда.
// Суммы приходят как float64 из заказов; здесь только отображение,
// никакой денежной арифметики.
package money

import "fmt"

// FormatUSD — сумма с двумя знаками после запятой: 19.999 → "$20.00".
func FormatUSD(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}
