package sqlinline

const QInsertDebugSession = `--sql 2b46a999-f162-46da-ab65-da1bebe91465
insert into debug_sessions(
  id,
  engine,
  error_message,
  analysis,
  solutions,
  created_at
) values (
  $1::text,
  $2::text,
  $3::text,
  $4::text,
  $5::jsonb,
  now()
);
`

const QListDebugSessions = `--sql 8d7e7156-2927-477d-af3b-5afcf8510506
select id, engine, error_message, analysis, solutions, created_at
from debug_sessions
order by created_at desc
limit $1::int;
`
