package entities

// ApplyDamage lowers the target's HP by amount clamped to [0, hp] and
// returns the damage actually dealt. Negative amounts deal nothing.
// A target brought to 0 HP is marked defeated.
func ApplyDamage(target Combatant, amount int) int {
	if target == nil {
		return 0
	}

	hp := max(0, target.GetHP())
	dealt := max(0, min(amount, hp))
	target.SetHP(hp - dealt)

	if target.GetHP() == 0 {
		target.SetDefeated(true)
	}
	return dealt
}

// ApplyHealing raises the target's HP by amount clamped to
// [0, maxHP-hp] and returns the healing actually applied. Targets at full
// HP receive 0. Defeated targets are not revived.
func ApplyHealing(target Combatant, amount int) int {
	if target == nil || !target.IsAlive() {
		return 0
	}

	hp := target.GetHP()
	missing := max(0, target.GetMaxHP()-hp)
	healed := max(0, min(amount, missing))
	target.SetHP(hp + healed)
	return healed
}

// GetHP reads current HP from any combatant regardless of how the
// underlying type stores it
func GetHP(target Combatant) int {
	if target == nil {
		return 0
	}
	return target.GetHP()
}

// SpendMP deducts amount when the pool covers it. It reports false and
// leaves MP untouched otherwise.
func SpendMP(target Combatant, amount int) bool {
	if amount <= 0 {
		return true
	}
	if target == nil || target.GetMP() < amount {
		return false
	}
	target.SetMP(target.GetMP() - amount)
	return true
}

// RestoreMP raises MP by amount clamped to the pool size and returns the
// amount restored
func RestoreMP(target Combatant, amount int) int {
	if target == nil {
		return 0
	}
	mp := target.GetMP()
	restored := max(0, min(amount, target.GetMaxMP()-mp))
	target.SetMP(mp + restored)
	return restored
}
