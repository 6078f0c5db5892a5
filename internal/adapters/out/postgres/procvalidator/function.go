package procvalidator

// transitionFunctionDDL installs the transition rule table as a database
// function. The rules live here, next to the data they judge, so every
// client of the database gets the same verdicts; the application only
// interprets them.
//
// Returned columns:
//   - current_status: the status the verdict was computed against, or -1
//     when the order does not exist
//   - warnings, blockers: newline-joined messages
//   - requires_override: the transition needs a staff justification note
const transitionFunctionDDL = `
CREATE OR REPLACE FUNCTION validate_order_transition(p_order_id uuid, p_new_status int)
RETURNS TABLE(current_status int, warnings text, blockers text, requires_override boolean)
LANGUAGE plpgsql
AS $$
DECLARE
	v_order orders%ROWTYPE;
	v_warnings text[] := '{}';
	v_blockers text[] := '{}';
	v_override boolean := false;
	v_allowed boolean := false;
	v_open_batches int;
BEGIN
	SELECT * INTO v_order FROM orders WHERE id = p_order_id;
	IF NOT FOUND THEN
		RETURN QUERY SELECT -1, ''::text, ''::text, false;
		RETURN;
	END IF;

	-- Forward edges of the lifecycle graph. Statuses are the integer
	-- values persisted in orders.status:
	--  1 draft            2 quote_requested  3 quote_sent      4 quote_approved
	--  5 quote_expired    6 deposit_pending  7 deposit_paid    8 scheduled
	--  9 in_production   10 on_hold         11 in_packing     12 packed
	-- 13 invoice_sent    14 invoice_paid    15 ready_to_ship  16 label_created
	-- 17 shipped         18 cancelled       19 archived
	v_allowed := (v_order.status, p_new_status) IN (
		(1, 2),
		(2, 3),
		(3, 4), (3, 5),
		(4, 6), (4, 8),
		(5, 2), (5, 19),
		(6, 7),
		(7, 8),
		(8, 9),
		(9, 10), (9, 11),
		(10, 9),
		(11, 12),
		(12, 13), (12, 15),
		(13, 14),
		(14, 15),
		(15, 16),
		(16, 17),
		(17, 19),
		(18, 19)
	);

	-- Cancellation is reachable from every non-terminal status.
	IF p_new_status = 18 AND v_order.status NOT IN (17, 18, 19) THEN
		v_allowed := true;
	END IF;

	IF NOT v_allowed THEN
		v_blockers := array_append(v_blockers, 'transition not allowed from current status');
	END IF;

	-- Deposit gate: production cannot start before the deposit settles.
	IF p_new_status = 9 AND v_order.deposit_required AND v_order.deposit_status <> 3 THEN
		v_blockers := array_append(v_blockers, 'deposit not paid');
	END IF;

	-- Packing gate: every batch must have finished its pipeline.
	IF p_new_status = 12 THEN
		SELECT COUNT(*) INTO v_open_batches
		FROM batches b
		WHERE b.order_id = p_order_id
			AND EXISTS (
				SELECT 1 FROM workflow_steps s
				WHERE s.batch_id = b.id AND s.status <> 3);
		IF v_open_batches > 0 THEN
			v_blockers := array_append(v_blockers,
				format('%s batch(es) not complete', v_open_batches));
		END IF;
	END IF;

	-- Scheduling straight from an approved quote skips deposit collection.
	IF v_order.status = 4 AND p_new_status = 8 AND v_order.deposit_required THEN
		v_override := true;
		v_warnings := array_append(v_warnings, 'deposit collection skipped');
	END IF;

	-- Cancelling after production started forfeits used materials.
	IF p_new_status = 18 AND v_order.status BETWEEN 9 AND 16 THEN
		v_override := true;
		v_warnings := array_append(v_warnings, 'order already in production');
	END IF;

	RETURN QUERY SELECT
		v_order.status,
		array_to_string(v_warnings, E'\n'),
		array_to_string(v_blockers, E'\n'),
		v_override;
END;
$$;
`
